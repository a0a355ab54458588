// Package resilience implements the remote-else-local policy applied at
// every data-access call site: try the real backend, and when it fails,
// log a warning and serve the in-process simulation instead. Callers see
// a value or a fallback-originated error, never a bare network error.
// Strict mode surfaces the transport error instead.
package resilience

import (
	"context"
	"log/slog"
)

type Policy struct {
	// Strict surfaces remote errors instead of falling back
	Strict bool
	Log    *slog.Logger
}

func NewPolicy(strict bool, log *slog.Logger) *Policy {
	if log == nil {
		log = slog.Default()
	}
	return &Policy{Strict: strict, Log: log}
}

// WithFallback runs remote and, on any error, degrades to fallback
func WithFallback[T any](ctx context.Context, p *Policy, op string, remote, fallback func(context.Context) (T, error)) (T, error) {
	out, err := remote(ctx)
	if err == nil {
		return out, nil
	}
	if p.Strict {
		return out, err
	}
	p.Log.Warn("remote call failed, using local fallback", "op", op, "error", err)
	return fallback(ctx)
}

// WithFallbackErr is WithFallback for operations without a result value
func WithFallbackErr(ctx context.Context, p *Policy, op string, remote, fallback func(context.Context) error) error {
	if err := remote(ctx); err != nil {
		if p.Strict {
			return err
		}
		p.Log.Warn("remote call failed, using local fallback", "op", op, "error", err)
		return fallback(ctx)
	}
	return nil
}
