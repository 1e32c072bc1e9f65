package search

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for search execution.
var (
	// ErrNilCSP is returned if a nil CSP is passed to Solve.
	ErrNilCSP = errors.New("search: csp is nil")
	// ErrNilPropagator is returned if a nil propagator is passed to Solve.
	ErrNilPropagator = errors.New("search: propagator is nil")
)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; it is checked between
	// value trials, so cancellation never interrupts the
	// prune/restore bookkeeping of a single trial.
	Ctx context.Context

	// Logger receives the search trace. Decisions, propagation
	// results and restores log at Debug; the run summary at Info.
	Logger *zap.Logger
}

// DefaultOptions returns Options with context.Background and a no-op
// logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the trace logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result carries the outcome and diagnostics of one search run.
// Decisions and Prunes are accumulated across the whole run; they are
// diagnostic only, not part of correctness.
type Result struct {
	// Solved reports whether a complete satisfying assignment was
	// found; when true the CSP holds it.
	Solved bool
	// Decisions counts variable assignment attempts.
	Decisions int
	// Prunes counts values pruned by propagator calls.
	Prunes int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}
