// Package logging initialises a [log/slog] logger from the application
// configuration and provides context-based logger propagation.
//
// The interactive browser owns the terminal, so it logs either to a file
// (OpenFile) or nowhere (Discard) instead of stderr.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/pathways/internal/config"
)

type ctxKey struct{}

// Setup creates a *slog.Logger configured according to cfg, writing to stderr,
// and installs it as the process-wide default via slog.SetDefault.
func Setup(cfg *config.Config) *slog.Logger {
	return SetupWithWriter(cfg, os.Stderr)
}

// SetupWithWriter creates a *slog.Logger configured according to cfg, writing
// to w, and installs it as the process-wide default via slog.SetDefault.
// Use this variant in tests to capture or suppress log output.
func SetupWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	logger := New(cfg, w)
	slog.SetDefault(logger)

	return logger
}

// New creates a *slog.Logger configured according to cfg without touching
// the process-wide default.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.EffectiveLogLevel())}

	var handler slog.Handler

	switch cfg.LogFormat {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default: // text
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// OpenFile creates a logger appending to path. The returned closer must be
// closed when the caller is done logging.
func OpenFile(cfg *config.Config, path string) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // user-provided log path
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %q: %w", path, err)
	}

	return New(cfg, f), f, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewContext returns a child context carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext extracts a logger from ctx, falling back to slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}

	return slog.Default()
}
