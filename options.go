package rendezvous

import (
	"github.com/ygrebnov/rendezvous/metrics"
	"github.com/ygrebnov/rendezvous/spawn"
)

// Option configures a Channel. Use NewOptions to construct a Channel via
// options.
type Option func(*Config)

// WithSpawner sets the spawner used for deferred ready callbacks and default
// commits.
func WithSpawner(s spawn.Spawner) Option {
	return func(cfg *Config) {
		if s == nil {
			panic(ErrNilSpawner)
		}
		cfg.Spawner = s
	}
}

// WithMetrics sets the provider the channel resolves its instruments from.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *Config) {
		if p == nil {
			panic(ErrNilMetrics)
		}
		cfg.Metrics = p
	}
}

// NewOptions creates a new Channel instance using functional options.
// It internally constructs a Config and delegates to New.
func NewOptions[V any](opts ...Option) *Channel[V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic(ErrNilOption)
		}
		opt(&cfg)
	}
	return New[V](&cfg)
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithChooser replaces the uniform random choice among ready cases. The
// function receives n > 0 and must return an index in [0, n).
func WithChooser(f func(n int) int) SelectorOption {
	return func(s *Selector) {
		if f == nil {
			panic(ErrNilChooser)
		}
		s.choose = f
	}
}

// WithSelectorMetrics sets the provider the selector resolves its
// instruments from.
func WithSelectorMetrics(p metrics.Provider) SelectorOption {
	return func(s *Selector) {
		if p == nil {
			panic(ErrNilMetrics)
		}
		s.rounds = p.Counter(metricSelectRounds)
		s.retries = p.Counter(metricSelectRetries)
	}
}
