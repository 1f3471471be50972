package logger

import (
	"os"
	"sync"
)

// Log levels accepted in log.level.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	process     *Logger
	processOnce sync.Once
)

// Get returns the process-wide logger writing to stdout. Every call applies
// level to the shared instance, so a later call with the configured level
// overrides the bootstrap one.
func Get(level string) *Logger {
	processOnce.Do(func() {
		process = New(Options{Level: level, Output: os.Stdout, Caller: true})
	})
	process.SetLevel(level)
	return process
}
