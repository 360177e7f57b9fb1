package log

import (
	"context"
	"log/slog"
)

// CallbackFunc is a function that receives log records
type CallbackFunc func(record slog.Record)

// NewCallbackLogger creates a logger that forwards logs to a callback function
func NewCallbackLogger(callback CallbackFunc, minLevel slog.Level) *slog.Logger {
	handler := NewCallbackHandler(callback, minLevel)
	return slog.New(handler)
}

// Tee returns a logger that writes to the package logger and also forwards
// records at or above minLevel to callback. The package logger is resolved
// per record, so later SetOutput and SetLevel calls apply.
func Tee(callback CallbackFunc, minLevel slog.Level) *slog.Logger {
	return slog.New(teeHandler{
		primary:   currentHandler{},
		secondary: NewCallbackHandler(callback, minLevel),
	})
}

// currentHandler delegates to whatever handler the package logger has now.
type currentHandler struct {
	attrs []slog.Attr
}

func (h currentHandler) resolve() slog.Handler {
	if len(h.attrs) == 0 {
		return logger.Handler()
	}
	return logger.Handler().WithAttrs(h.attrs)
}

func (h currentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return logger.Handler().Enabled(ctx, level)
}

func (h currentHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.resolve().Handle(ctx, r)
}

func (h currentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return currentHandler{attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...)}
}

func (h currentHandler) WithGroup(name string) slog.Handler {
	// Groups are flattened
	return h
}

type teeHandler struct {
	primary   slog.Handler
	secondary slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.primary.Enabled(ctx, level) || t.secondary.Enabled(ctx, level)
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if t.primary.Enabled(ctx, r.Level) {
		err = t.primary.Handle(ctx, r.Clone())
	}
	if t.secondary.Enabled(ctx, r.Level) {
		if serr := t.secondary.Handle(ctx, r); err == nil {
			err = serr
		}
	}
	return err
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{
		primary:   t.primary.WithAttrs(attrs),
		secondary: t.secondary.WithAttrs(attrs),
	}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{
		primary:   t.primary.WithGroup(name),
		secondary: t.secondary.WithGroup(name),
	}
}
