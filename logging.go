package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	persistentLogFile *os.File
	loggingMu         sync.Mutex
)

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// setupLogger initializes the structured logger, tee'd to logPath when it can be opened.
func setupLogger(logPath, level string) {
	loggingMu.Lock()
	defer loggingMu.Unlock()

	closeLoggerLocked()

	var logFile *os.File
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logFile = f
		}
	}

	var out io.Writer = os.Stdout
	if logFile != nil {
		persistentLogFile = logFile
		out = io.MultiWriter(os.Stdout, logFile)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLogLevel(level)})
	slog.SetDefault(slog.New(handler).With("app", "vipbot"))

	if logFile != nil {
		slog.Info("Persistent logging enabled", "file", logPath)
	} else if logPath != "" {
		slog.Error("Persistent logging disabled: failed to open log file", "file", logPath)
	}
}

func closeLogger() {
	loggingMu.Lock()
	defer loggingMu.Unlock()
	closeLoggerLocked()
}

func closeLoggerLocked() {
	if persistentLogFile == nil {
		return
	}
	_ = persistentLogFile.Sync()
	_ = persistentLogFile.Close()
	persistentLogFile = nil
}
