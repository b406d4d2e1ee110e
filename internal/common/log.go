// File path: internal/common/log.go
package common

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger     *slog.Logger
	loggerOnce sync.Once
)

// Logger returns a singleton slog logger configured via the LOG_LEVEL
// environment variable.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		level := slog.LevelInfo
		if lvl := strings.ToLower(os.Getenv("LOG_LEVEL")); lvl != "" {
			switch lvl {
			case "debug":
				level = slog.LevelDebug
			case "warn":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			}
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		logger = slog.New(handler)
	})
	return logger
}
