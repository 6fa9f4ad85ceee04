package rendezvous

import (
	"math/rand/v2"

	"github.com/creachadair/msync"

	"github.com/ygrebnov/rendezvous/metrics"
)

// Selector drives a multi-way nondeterministic choice over candidate cases.
// The zero configuration (see NewSelector and the package-level Select)
// chooses uniformly at random among the cases that are ready and records no
// metrics. A Selector is stateless between calls and safe for concurrent use.
type Selector struct {
	choose  func(n int) int
	rounds  metrics.Counter
	retries metrics.Counter
}

// NewSelector creates a new Selector instance using functional options.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{
		choose:  rand.IntN,
		rounds:  metrics.NewNoopProvider().Counter(metricSelectRounds),
		retries: metrics.NewNoopProvider().Counter(metricSelectRetries),
	}
	for _, opt := range opts {
		if opt == nil {
			panic(ErrNilOption)
		}
		opt(s)
	}
	return s
}

var defaultSelector = NewSelector()

// Select completes exactly one of cases and invokes that case's callback;
// every other case is cancelled and leaves no observable effect on its
// channel. It delegates to a default Selector; use NewSelector to configure
// the choice function or metrics.
func Select(cases ...Case) {
	defaultSelector.Select(cases...)
}

// Select arms every case, waits for any of them to become ready, commits one
// of the ready ones chosen by the configured chooser, and cancels the rest.
// If the chosen handoff does not commit (a competing party resolved it
// between the signal and the commit), the round cancels every armed handoff,
// re-arms the same case set against current queue state and tries again;
// the other ready handoffs of that round are not tried.
func (s *Selector) Select(cases ...Case) {
	if len(cases) == 0 {
		panic(ErrEmptySelect)
	}

	for {
		s.rounds.Add(1)

		// One coalescing signal per round: every armed handoff sets it on
		// entering Ready, the selector consumes it once.
		flag := msync.NewFlag[any]()
		notify := func() { flag.Set(nil) }

		hs := make([]armed, len(cases))
		for i, c := range cases {
			hs[i] = c.arm(notify)
		}

		<-flag.Ready()

		ready := make([]int, 0, len(cases))
		for i, h := range hs {
			if h.isReady() {
				ready = append(ready, i)
			}
		}

		if len(ready) > 0 {
			win := ready[s.choose(len(ready))]
			// TODO: distinguish a first commit from a replay in proceed's
			// result; two selectors arming overlapping handoffs can both
			// observe the same handoff as done.
			if hs[win].proceed() == completed {
				for i, h := range hs {
					if i != win {
						h.cancel()
					}
				}
				cases[win].fire()
				return
			}
		}

		// Lost every race this round. Cancel the leftovers so their peers
		// retry, then re-arm.
		for _, h := range hs {
			h.cancel()
		}
		s.retries.Add(1)
	}
}
