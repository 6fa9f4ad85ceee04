package rendezvous

import (
	"sync"
	"time"

	"github.com/creachadair/mds/queue"

	"github.com/ygrebnov/rendezvous/metrics"
	"github.com/ygrebnov/rendezvous/spawn"
)

// Channel is an unbuffered multi-producer/multi-consumer rendezvous point.
// A value crosses a Channel only when a Send is paired with a Recv; neither
// side proceeds until both are present.
//
// The mutex protects only the two waiter queues. At any instant at least one
// queue is empty: an arriving party always drains the counterpart queue
// before parking itself. The mutex is never held across a rendezvous wait,
// and a channel mutex and a handoff mutex are never held at the same time.
type Channel[V any] struct {
	spawner spawn.Spawner

	sends    metrics.Counter
	recvs    metrics.Counter
	cancels  metrics.Counter
	parked   metrics.UpDownCounter
	waitSecs metrics.Histogram

	mu    sync.Mutex
	sendq *queue.Queue[*handoff[V]] // handoffs parked by senders
	recvq *queue.Queue[*handoff[V]] // handoffs parked by receivers
}

// New creates a new Channel instance and returns it. A nil config selects
// the defaults.
func New[V any](config *Config) *Channel[V] {
	if config == nil {
		cfg := defaultConfig()
		config = &cfg
	}

	if err := validateConfig(config); err != nil {
		panic(err)
	}

	sp := config.Spawner
	if sp == nil {
		sp = spawn.Default()
	}
	m := config.Metrics
	if m == nil {
		m = metrics.NewNoopProvider()
	}

	return &Channel[V]{
		spawner:  sp,
		sends:    m.Counter(metricSends),
		recvs:    m.Counter(metricRecvs),
		cancels:  m.Counter(metricCancels),
		parked:   m.UpDownCounter(metricParked),
		waitSecs: m.Histogram(metricWaitSeconds),
		sendq:    queue.New[*handoff[V]](),
		recvq:    queue.New[*handoff[V]](),
	}
}

// Send blocks until v has been delivered to some receiver on c.
//
// Each attempt either adopts the frontmost waiting receiver's handoff or
// parks a fresh handoff for future receivers. A cancelled handoff (a select
// elsewhere backed out of the pairing) restarts the attempt from scratch.
func (c *Channel[V]) Send(v V) {
	start := time.Now()
	for {
		h := c.pairSender(nil)

		c.parked.Add(1)
		r := h.asSender(v)
		c.parked.Add(-1)

		if r == completed {
			c.sends.Add(1)
			c.waitSecs.Record(time.Since(start).Seconds())
			return
		}
		c.cancels.Add(1)
	}
}

// Recv blocks until a value sent on c has been delivered to the caller, and
// returns it. Cancelled pairings restart the attempt, as in Send.
func (c *Channel[V]) Recv() V {
	start := time.Now()
	for {
		h := c.pairReceiver(nil)

		c.parked.Add(1)
		v, r := h.asReceiver()
		c.parked.Add(-1)

		if r == completed {
			c.recvs.Add(1)
			c.waitSecs.Record(time.Since(start).Seconds())
			return v
		}
		c.cancels.Add(1)
	}
}

// pairSender obtains the handoff a sender must play: the frontmost waiting
// receiver's, or a fresh one parked on sendq. A non-nil ready callback is
// installed on the obtained handoff (replacing whatever was there); nil
// leaves the handoff's existing callback in place.
func (c *Channel[V]) pairSender(ready func()) *handoff[V] {
	c.mu.Lock()
	if h, ok := c.recvq.Pop(); ok {
		c.mu.Unlock()
		if ready != nil {
			h.onReady(ready)
		}
		return h
	}
	h := newHandoff[V](c.spawner, ready)
	c.sendq.Add(h)
	c.mu.Unlock()
	return h
}

// pairReceiver is the receiver-side mirror of pairSender.
func (c *Channel[V]) pairReceiver(ready func()) *handoff[V] {
	c.mu.Lock()
	if h, ok := c.sendq.Pop(); ok {
		c.mu.Unlock()
		if ready != nil {
			h.onReady(ready)
		}
		return h
	}
	h := newHandoff[V](c.spawner, ready)
	c.recvq.Add(h)
	c.mu.Unlock()
	return h
}

// tryArmSend obtains and arms a handoff for sending v without parking: the
// sender's half of the phase machine is advanced, ready is installed, and
// the caller decides later whether to proceed or cancel.
func (c *Channel[V]) tryArmSend(v V, ready func()) *handoff[V] {
	h := c.pairSender(ready)
	h.putValue(v)
	return h
}

// tryArmRecv is the receiver-side mirror of tryArmSend.
func (c *Channel[V]) tryArmRecv(ready func()) *handoff[V] {
	h := c.pairReceiver(ready)
	h.markReader()
	return h
}
