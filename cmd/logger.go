package cmd

import (
	"io"
	"log/slog"
)

// setupLogger installs the process-wide structured logger. Diagnostic output
// proper goes to stdout; logs go to w (stderr in production).
func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
