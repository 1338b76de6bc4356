// Package logger builds the process-wide structured logger and carries
// the per-request correlation id through context.Context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/brandonkimmmm/backend-coding-test/internal/config"
)

type ctxKey struct{}

// New creates the logger from configuration: a size-rotated file
// transport, an optional console tee and a minimum level. Initialized
// once at startup and passed explicitly to every component.
func New(cfg config.LogConfig) *slog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if cfg.Dir != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, cfg.Filename),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}))
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithRequestID stores the correlation id in the context. The id is
// used purely for log correlation, never for business logic.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID extracts the correlation id from the context.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Ctx returns l with the context's correlation id attached, so every
// downstream log line of a request carries the same id.
func Ctx(ctx context.Context, l *slog.Logger) *slog.Logger {
	if id := RequestID(ctx); id != "" {
		return l.With(slog.String("request_id", id))
	}
	return l
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
