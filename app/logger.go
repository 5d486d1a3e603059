package app

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/ecofocus/dashboard"
	"github.com/ayoisaiah/ecofocus/internal/pathutil"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// newLogger returns a JSON logger writing to the rotating log file.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv(dashboard.EnvDebug) != "" {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
