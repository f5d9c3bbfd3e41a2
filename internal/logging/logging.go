// Package logging configures structured logging for the warning computer.
// Log records go to a size-rotated JSON file plus, optionally, stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// #region logger
// Logger wraps slog and remembers where the rotating file lives.
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// Options control how New builds the logger.
type Options struct {
	Level   string // "debug" | "info" | "warn" | "error"
	Dir     string // log directory, created if missing
	Console bool   // mirror records to stderr
}

// New builds a Logger writing JSON records to <dir>/fwc.log with rotation.
func New(opts Options) (*Logger, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "fwc.log"),
		MaxSize:    32, // MB
		MaxBackups: 3,
		Compress:   true,
	}

	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = w
	if opts.Console {
		out = io.MultiWriter(w, os.Stderr)
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})
	return &Logger{
		Logger:  slog.New(h),
		LogFile: w.Filename,
		Start:   time.Now(),
	}, nil
}

// NewDiscard returns a Logger that drops every record. Test use only.
func NewDiscard() *Logger {
	h := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	return &Logger{Logger: slog.New(h), Start: time.Now()}
}

// With returns a child logger carrying the extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		Start:   l.Start,
	}
}

// #endregion logger

// #region level
func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// #endregion level
