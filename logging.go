package main

import (
	"log"
	"log/slog"
	"os"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logs go to a file, as stdout is taken by the TUI
func initSlog(cfg config) (*os.File, error) {
	file, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(file)
	slog.SetDefault(slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})))

	return file, nil
}
