package debug

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FRAME_DEBUG"

// NewLogger creates a logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

var (
	logFile *os.File
	mu      sync.Mutex
)

// Open opens (or creates) the log file at path and returns a debug-level
// logger appending to it. The file stays open until Close.
func Open(path string) (*log.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "frame-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return NewLogger(f, log.DebugLevel), nil
}

// Close closes the file opened by Open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// FromEnv returns a file logger when FRAME_DEBUG is set and a discarding
// logger otherwise.
func FromEnv() *log.Logger {
	path := os.Getenv(EnvVar)
	if path == "" {
		return NewLogger(io.Discard, log.FatalLevel)
	}
	l, err := Open(path)
	if err != nil {
		return NewLogger(io.Discard, log.FatalLevel)
	}
	return l
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFrom retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func LoggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
