// Package logging initializes the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"time"
)

// Init installs a JSON slog handler as the default logger. Debug level
// is enabled outside prod so scraping runs leave a full trail.
func Init(w io.Writer, env string) {
	level := slog.LevelDebug
	if env == "prod" {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Timed logs the elapsed milliseconds of an operation when the returned
// function runs. Usage: defer logging.Timed("fetch company card")().
func Timed(msg string, args ...any) func() {
	start := time.Now()
	return func() {
		args = append(args, "elapsed_ms", time.Since(start).Milliseconds())
		slog.Debug(msg, args...)
	}
}
