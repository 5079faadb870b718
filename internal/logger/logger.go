package logger

import (
	"sync"
)

// Accepted values of log.level.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	shared   *Logger
	initOnce sync.Once
)

// Get returns the process logger. Only the first call's level counts; the
// binaries call it once the config is loaded, or with InfoLevel to report
// a config error.
func Get(level string) *Logger {
	initOnce.Do(func() {
		shared = New(level)
	})
	return shared
}

// Stage returns a child logger whose entries carry stage=name.
// A nil receiver yields a discarding logger so stages can be built without one.
func (l *Logger) Stage(name string) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{SugaredLogger: l.With("stage", name)}
}
