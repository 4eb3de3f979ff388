// Package logging builds the slog logger used across nitpick.
//
// Output is a single console line per record: timestamp, level, message,
// then key=value attributes. Level is driven by the repeated -v/--verbose
// count from the bootstrap parser; color is enabled only when the target is
// a terminal.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Options describes logger construction parameters.
type Options struct {
	// Verbosity counts -v occurrences: 0 warn, 1 info, 2+ debug.
	Verbosity int
	Output    io.Writer
	NoColor   bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(levelFromVerbosity(opts.Verbosity))

	color := !opts.NoColor && writerIsTerminal(out)
	return slog.New(newConsoleHandler(out, levelVar, color))
}

// Configure builds a logger from the bootstrap verbosity and installs it as
// the process default.
func Configure(verbosity int) *slog.Logger {
	logger := New(Options{Verbosity: verbosity})
	slog.SetDefault(logger)
	return logger
}

func levelFromVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
