package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tc := range cases {
		if got := toZapLevel(tc.in); got != tc.want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStage_NilLoggerFallsBackToNop(t *testing.T) {
	var l *Logger
	child := l.Stage("login")
	if child == nil || child.SugaredLogger == nil {
		t.Fatalf("expected non-nil nop logger")
	}
	child.Infow("ignored", "k", "v")
}

func TestStage_TagsEntriesAndHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "warn").Stage("learning")

	l.Infow("baseline_poll", "pending", 2)
	l.Warnw("baseline_timeout", "pending", 1)

	out := buf.String()
	if strings.Contains(out, "baseline_poll") {
		t.Fatalf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "baseline_timeout") || !strings.Contains(out, `"stage"`) || !strings.Contains(out, "learning") {
		t.Fatalf("unexpected output: %q", out)
	}
}
