package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide structured logger, set once at startup.
var Log *slog.Logger

// Init builds the JSON application logger. LOG_LEVEL overrides the default
// level, which is info in production and debug everywhere else.
func Init(production bool) {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level(os.Getenv("LOG_LEVEL"), production),
	}))
}

func level(name string, production bool) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if production {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
