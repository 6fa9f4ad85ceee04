package rendezvous

import (
	"github.com/ygrebnov/rendezvous/metrics"
	"github.com/ygrebnov/rendezvous/spawn"
)

// Config holds Channel configuration.
type Config struct {
	// Spawner schedules deferred ready callbacks and default commits on a
	// background worker. Parked channel operations never occupy a spawner
	// slot; only short notification functions run on it.
	// Default: spawn.Default().
	Spawner spawn.Spawner

	// Metrics provides the instruments the channel records into.
	// Default: metrics.NewNoopProvider().
	Metrics metrics.Provider
}

// Instrument names recorded by channels and selectors.
const (
	metricSends         = "rendezvous_sends_completed"
	metricRecvs         = "rendezvous_recvs_completed"
	metricCancels       = "rendezvous_handoffs_cancelled"
	metricParked        = "rendezvous_parked_waiters"
	metricWaitSeconds   = "rendezvous_wait_seconds"
	metricSelectRounds  = "rendezvous_select_rounds"
	metricSelectRetries = "rendezvous_select_retries"
)
