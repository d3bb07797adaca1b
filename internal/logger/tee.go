package logger

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler duplicates records to every target. Each target gets its own
// clone so a handler that mutates the record cannot affect the others.
type teeHandler struct {
	targets []slog.Handler
}

// newTee combines handlers into a single slog.Handler. Nil entries are
// dropped, and a lone surviving target is returned directly without the
// tee wrapper.
func newTee(handlers ...slog.Handler) slog.Handler {
	targets := make([]slog.Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			targets = append(targets, h)
		}
	}
	if len(targets) == 1 {
		return targets[0]
	}
	return &teeHandler{targets: targets}
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.targets {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every enabled target. A failing target does
// not stop delivery to the rest; the errors are joined afterwards.
func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t.targets {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	targets := make([]slog.Handler, len(t.targets))
	for i, h := range t.targets {
		targets[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{targets: targets}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	targets := make([]slog.Handler, len(t.targets))
	for i, h := range t.targets {
		targets[i] = h.WithGroup(name)
	}
	return &teeHandler{targets: targets}
}
