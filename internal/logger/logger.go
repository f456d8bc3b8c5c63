// Package logger configures slog for a detective session.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"noir/internal/config"
)

// Attribute keys shared by the game's log lines.
const (
	KeyComponent = "component"
	KeyCase      = "case"
	KeyError     = "error"
)

// Setup configures the global slog logger based on environment
func Setup(cfg *config.Config) *slog.Logger {
	l := New(cfg, os.Stderr)
	slog.SetDefault(l)
	return l
}

// New builds a logger writing to w: JSON in production, text elsewhere.
// Debug builds also record the call site.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel,
		AddSource: cfg.LogLevel <= slog.LevelDebug && cfg.Environment != "production",
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Component tags l with the part of the game that logs through it. A nil
// logger is replaced by one that discards everything.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	return l.With(KeyComponent, name)
}

// ForCase groups the story ID and seed under "case", so every line about one
// mystery can be filtered together.
func ForCase(l *slog.Logger, id uuid.UUID, seed int64) *slog.Logger {
	return l.With(slog.Group(KeyCase,
		slog.String("id", id.String()),
		slog.Int64("seed", seed)))
}

// Err wraps err as the conventional error attribute.
func Err(err error) slog.Attr {
	return slog.Any(KeyError, err)
}
