package logger

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a sugared zap logger whose level can be changed after
// construction.
type Logger struct {
	*zap.SugaredLogger
	level zap.AtomicLevel
}

// Options control how New assembles a Logger.
type Options struct {
	// Level is one of the *Level constants. Anything else means info.
	Level string
	// Output receives console-encoded entries.
	Output io.Writer
	// Caller annotates entries with file:line.
	Caller bool
}

// New builds a console logger from opts. A nil Output discards entries.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	lvl := zap.NewAtomicLevelAt(parseLevel(opts.Level))

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(opts.Output)),
		lvl,
	)

	var zopts []zap.Option
	if opts.Caller {
		zopts = append(zopts, zap.AddCaller())
	}
	return &Logger{SugaredLogger: zap.New(core, zopts...).Sugar(), level: lvl}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar(), level: zap.NewAtomicLevel()}
}

// Named returns a child logger whose entries carry the component name.
// The child shares the parent's level.
func (l *Logger) Named(component string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(component), level: l.level}
}

// SetLevel changes the minimum level of l and every logger derived from it.
func (l *Logger) SetLevel(level string) {
	l.level.SetLevel(parseLevel(level))
}

// Level reports the current minimum level.
func (l *Logger) Level() zapcore.Level {
	return l.level.Level()
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
