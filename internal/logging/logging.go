package logging

import (
	"io"
	"log/slog"
	"os"
)

var (
	// Logger receives diagnostics about config loading, index scans and
	// VCS commands. Messages for the user go through the User* functions.
	Logger = newLogger(os.Stderr, slog.LevelWarn, false)

	// Verbose is set by -v. Debug records are dropped without it.
	Verbose bool
)

func newLogger(w io.Writer, level slog.Level, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs the logger for one command run. Warnings are always
// written; -v adds debug records such as every git invocation. A nil w
// writes to stderr.
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}

	Logger = newLogger(w, level, jsonOutput)
}

// Debug logs a record shown only with -v.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a recoverable failure the command carried on past.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
