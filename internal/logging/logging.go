// Package logging owns slog handler setup and hands out per-component
// loggers. The TUI owns stdout, so logs default to a file under the state
// directory; PANELDECK_LOG=stderr redirects for headless runs and tests.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	// LogEnv overrides the log destination: a file path, "stderr", or
	// "off" to discard.
	LogEnv = "PANELDECK_LOG"
	// LevelEnv sets the minimum level (debug, info, warn, error).
	LevelEnv = "PANELDECK_LOG_LEVEL"
)

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
)

// Init installs the process-wide logger writing to the given path (or the
// PANELDECK_LOG override). Safe to call more than once; the last call wins.
func Init(path string) {
	mu.Lock()
	defer mu.Unlock()

	dest := os.Getenv(LogEnv)
	if dest == "" {
		dest = path
	}

	var w io.Writer
	switch dest {
	case "", "off":
		w = io.Discard
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			w = io.Discard
		} else {
			w = f
		}
	}

	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv(LevelEnv))}
	defaultLogger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(defaultLogger)
}

// Default returns the process logger, initializing a discard logger if
// Init has not run.
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return defaultLogger
}

// ForComponent returns a logger tagged with the owning component.
func ForComponent(component string) *slog.Logger {
	return Default().With(slog.String("component", component))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
