package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the sugared zap logger shared by the seeder and the mock API.
// Entries use snake_case event names with key/value pairs.
type Logger struct {
	*zap.SugaredLogger
}

var levels = map[string]zapcore.Level{
	DebugLevel: zapcore.DebugLevel,
	InfoLevel:  zapcore.InfoLevel,
	WarnLevel:  zapcore.WarnLevel,
	ErrorLevel: zapcore.ErrorLevel,
}

// toZapLevel is case-insensitive; unknown or empty values mean info.
func toZapLevel(levelStr string) zapcore.Level {
	if lvl, ok := levels[strings.ToLower(strings.TrimSpace(levelStr))]; ok {
		return lvl
	}
	return zapcore.InfoLevel
}

// consoleCore writes human-readable lines with RFC3339 timestamps.
func consoleCore(w io.Writer, level zapcore.Level) zapcore.Core {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
}

// New builds a stdout logger at the given level.
func New(levelStr string) *Logger {
	return newWithWriter(os.Stdout, levelStr)
}

func newWithWriter(w io.Writer, levelStr string) *Logger {
	return &Logger{SugaredLogger: zap.New(consoleCore(w, toZapLevel(levelStr))).Sugar()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
