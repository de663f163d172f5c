package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global slog logger: JSON to stdout, level from
// LOG_LEVEL (debug|info|warn|error), defaulting to info.
func Setup() {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
