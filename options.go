package rangecache

import "log/slog"

// Option configures a RangeCache during construction.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
	sum      any
}

// WithLogger sets the logger used for eviction and invalidation events,
// which are logged at debug level. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver reports every query, update and eviction to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithSumFunc replaces LinearSum as the function that computes cache misses.
// The element type of fn must match the cache's element type.
func WithSumFunc[T Integer](fn SumFunc[T]) Option {
	return func(o *options) {
		o.sum = fn
	}
}
