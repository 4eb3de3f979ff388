package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromVerbosity(t *testing.T) {
	cases := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
		{-1, slog.LevelWarn},
	}
	for _, tc := range cases {
		if got := levelFromVerbosity(tc.verbosity); got != tc.want {
			t.Fatalf("verbosity %d: got %v want %v", tc.verbosity, got, tc.want)
		}
	}
}

func TestConsoleHandlerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Verbosity: 2, Output: &buf, NoColor: true})

	logger.Info("registered option", "option", "--max-line-length", "group", "")
	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level label: %q", line)
	}
	if !strings.Contains(line, "registered option") {
		t.Fatalf("missing message: %q", line)
	}
	if !strings.Contains(line, "option=--max-line-length") {
		t.Fatalf("missing attr: %q", line)
	}
}

func TestConsoleHandlerSuppressesBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Verbosity: 0, Output: &buf, NoColor: true})

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info suppressed at default verbosity, got %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn emitted, got %q", buf.String())
	}
}

func TestWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Verbosity: 1, Output: &buf, NoColor: true})

	logger.With("session_id", "abc").WithGroup("merge").Info("override", "dest", "max_line_length")
	line := buf.String()
	if !strings.Contains(line, "session_id=abc") {
		t.Fatalf("missing inherited attr: %q", line)
	}
	if !strings.Contains(line, "merge.dest=max_line_length") {
		t.Fatalf("missing grouped attr: %q", line)
	}
}

func TestQuotedStringValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Verbosity: 1, Output: &buf, NoColor: true})

	logger.Info("msg", "help", "line length limit")
	if !strings.Contains(buf.String(), `help="line length limit"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}
