package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		" WARN ":   zapcore.WarnLevel,
		"bogus":    zapcore.InfoLevel,
		"":         zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_WritesAtOrAboveLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: WarnLevel, Output: &buf})

	l.Infow("quiet")
	l.Warnw("loud", "task", 7)

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "loud") || !strings.Contains(out, `"task": 7`) {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestSetLevel_AppliesToNamedChildren(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: ErrorLevel, Output: &buf})
	child := l.Named("auth")

	child.Debugw("hidden")
	l.SetLevel(DebugLevel)
	child.Debugw("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written before SetLevel: %q", out)
	}
	if !strings.Contains(out, "auth") || !strings.Contains(out, "shown") {
		t.Errorf("child entry missing name or message: %q", out)
	}
	if child.Level() != zapcore.DebugLevel {
		t.Errorf("child level = %v, want debug", child.Level())
	}
}

func TestGet_SharedInstanceTakesLatestLevel(t *testing.T) {
	a := Get(InfoLevel)
	b := Get(ErrorLevel)
	if a != b {
		t.Fatal("Get should return the same instance")
	}
	if a.Level() != zapcore.ErrorLevel {
		t.Errorf("level = %v, want error", a.Level())
	}
}

func TestNop(t *testing.T) {
	l := Nop().Named("auth")
	if l == nil || l.SugaredLogger == nil {
		t.Fatal("Named returned nil logger")
	}
	l.Infow("ignored", "k", "v")
	l.SetLevel(DebugLevel)
}
