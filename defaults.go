package rendezvous

import (
	"github.com/ygrebnov/rendezvous/metrics"
	"github.com/ygrebnov/rendezvous/spawn"
)

// defaultConfig centralizes default values for Config.
// These defaults are applied by both New (when cfg is nil) and NewOptions
// (options builder base).
func defaultConfig() Config {
	return Config{
		Spawner: spawn.Default(),
		Metrics: metrics.NewNoopProvider(),
	}
}

// validateConfig performs lightweight invariants checks.
// Nil fields are valid (New normalizes them to the defaults above); reserved
// for future validation expansions.
func validateConfig(_ *Config) error {
	return nil
}
