package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "fetch")
	l.Info("loaded %d points", 42)

	out := buf.String()
	if !strings.Contains(out, "[fetch] INFO: loaded 42 points") {
		t.Errorf("output = %q, want name, level and message", out)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "x")
	l.SetLevel(LevelWarning)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warning("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "WARNING: shown") {
		t.Errorf("output = %q, want warning line", out)
	}
}

func TestLoggerNamedSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	root := New(&buf, "root")
	root.Named("child").Error("boom")

	if !strings.Contains(buf.String(), "[child] ERROR: boom") {
		t.Errorf("output = %q, want child line", buf.String())
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("nothing")
	l.SetLevel(LevelError)
	if l.Named("x") != nil {
		t.Error("Named on nil logger should return nil")
	}
}
