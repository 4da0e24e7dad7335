// ABOUTME: Structured logger factory that picks the logrus or zap backend from config
// ABOUTME: Both backends write JSON lines and can tee into a rotating log file

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"newsbrief-api/core/interfaces"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	BackendLogrus = "logrus"
	BackendZap    = "zap"
)

// Config describes where and how to log
type Config struct {
	Backend string // logrus (default) or zap
	Level   string // debug, info, warn, error
	File    string // optional path of a rotated log file

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Output defaults to stdout
	Output io.Writer
}

// Logger is an interfaces.Logger that owns its outputs
type Logger struct {
	interfaces.Logger
	closers []func() error
}

// Close flushes buffered entries and closes the log file, if any
func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// New builds a logger for cfg
func New(cfg Config) (*Logger, error) {
	out, file, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}

	l := &Logger{}

	switch strings.ToLower(cfg.Backend) {
	case "", BackendLogrus:
		lr, err := newLogrus(out, cfg.Level)
		if err != nil {
			return nil, err
		}
		l.Logger = lr
	case BackendZap:
		zl, err := newZap(out, cfg.Level)
		if err != nil {
			return nil, err
		}
		l.Logger = zl
		l.closers = append(l.closers, zl.sync)
	default:
		return nil, fmt.Errorf("unsupported log backend: %s", cfg.Backend)
	}

	if file != nil {
		l.closers = append(l.closers, file.Close)
	}
	return l, nil
}

func openOutput(cfg Config) (io.Writer, io.Closer, error) {
	var out io.Writer = os.Stdout
	if cfg.Output != nil {
		out = cfg.Output
	}

	if cfg.File == "" {
		return out, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    orDefault(cfg.MaxSizeMB, 64),
		MaxBackups: orDefault(cfg.MaxBackups, 3),
		MaxAge:     orDefault(cfg.MaxAgeDays, 7),
		Compress:   true,
	}
	return io.MultiWriter(out, file), file, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func normalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return "info"
	}
	return level
}
