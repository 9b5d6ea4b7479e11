package logging

import (
	"io"
	"log/slog"
	"os"
)

var stdout io.Writer = os.Stdout

// Setup installs a JSON slog logger on stdout as the process default.
func Setup(level slog.Level) *slog.Logger {
	return SetupWriter(stdout, level)
}

func SetupWriter(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(NewJSONHandler(w, level))
	slog.SetDefault(logger)
	return logger
}

func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
