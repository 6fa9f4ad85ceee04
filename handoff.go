package rendezvous

import (
	"sync"

	"github.com/creachadair/msync/trigger"

	"github.com/ygrebnov/rendezvous/spawn"
)

// phaseKind enumerates the states of the handoff machine. A handoff passes
// through each distinct phase at most once; phaseDone is terminal.
type phaseKind int

const (
	phaseEmpty phaseKind = iota
	phaseReaderPresent
	phaseValuePresent
	phaseReady
	phaseDone
)

// outcome reports how a handoff resolved.
type outcome int

const (
	cancelled outcome = iota
	completed
)

// armed is the control surface a selector holds for a candidate handoff.
type armed interface {
	isReady() bool
	proceed() outcome
	cancel() outcome
}

// handoff mediates exactly one potential rendezvous for a value of type V.
// One party plays sender, one plays receiver; the value crosses iff the
// handoff is committed via proceed.
//
// All transitions happen under mu. The ready callback fires at most once, on
// the first entry to phaseReady, and never while mu is held. Parked parties
// wait on done with an obtain-then-recheck loop, so a Signal cannot be lost.
type handoff[V any] struct {
	spawner spawn.Spawner

	mu     sync.Mutex
	kind   phaseKind
	value  V       // set in phaseValuePresent; delivered in Done(completed)
	result outcome // valid once kind == phaseDone
	ready  func()  // pending ready callback; nil after it has been taken
	done   *trigger.Cond

	senderSeen   bool
	receiverSeen bool
}

// newHandoff constructs a handoff. A nil ready callback installs the default
// committer: outside a select, readiness means commit, so the default
// schedules proceed on the spawner.
func newHandoff[V any](s spawn.Spawner, ready func()) *handoff[V] {
	h := &handoff[V]{spawner: s, done: trigger.New()}
	if ready == nil {
		ready = func() { s.Spawn(func() { h.proceed() }) }
	}
	h.ready = ready
	return h
}

// putValue plays the sender's transition without parking:
// Empty->ValuePresent, or ReaderPresent->Ready. Arriving at a handoff that is
// already Done is a no-op; wait reports the stored outcome. Playing the
// sender side twice is a usage bug.
func (h *handoff[V]) putValue(v V) {
	h.mu.Lock()
	if h.senderSeen {
		h.mu.Unlock()
		panic(ErrHandoffReused)
	}
	h.senderSeen = true

	var fire func()
	switch h.kind {
	case phaseEmpty:
		h.kind = phaseValuePresent
		h.value = v
	case phaseReaderPresent:
		h.kind = phaseReady
		h.value = v
		fire = h.takeReady()
	case phaseDone:
		// Resolved before the sender arrived.
	default:
		h.mu.Unlock()
		panic(ErrHandoffReused)
	}
	h.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// markReader plays the receiver's transition without parking:
// Empty->ReaderPresent, or ValuePresent->Ready. Symmetric to putValue.
func (h *handoff[V]) markReader() {
	h.mu.Lock()
	if h.receiverSeen {
		h.mu.Unlock()
		panic(ErrHandoffReused)
	}
	h.receiverSeen = true

	var fire func()
	switch h.kind {
	case phaseEmpty:
		h.kind = phaseReaderPresent
	case phaseValuePresent:
		h.kind = phaseReady
		fire = h.takeReady()
	case phaseDone:
		// Resolved before the receiver arrived.
	default:
		h.mu.Unlock()
		panic(ErrHandoffReused)
	}
	h.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// takeReady detaches the pending ready callback so the caller can fire it
// after releasing mu. Must be called with mu held.
func (h *handoff[V]) takeReady() func() {
	cb := h.ready
	h.ready = nil
	return cb
}

// onReady installs or replaces the ready callback. If the handoff is already
// ready (or resolved) the callback is scheduled promptly on the spawner; it
// is never invoked under mu.
func (h *handoff[V]) onReady(cb func()) {
	h.mu.Lock()
	if h.kind == phaseReady || h.kind == phaseDone {
		h.mu.Unlock()
		h.spawner.Spawn(cb)
		return
	}
	h.ready = cb
	h.mu.Unlock()
}

// wait parks the calling goroutine until the handoff resolves, then returns
// the carried value and the stored outcome. The value is meaningful only for
// a receiver observing completed.
func (h *handoff[V]) wait() (V, outcome) {
	for {
		ready := h.done.Ready()
		h.mu.Lock()
		if h.kind == phaseDone {
			v, r := h.value, h.result
			h.mu.Unlock()
			return v, r
		}
		h.mu.Unlock()
		<-ready
	}
}

// asSender plays the sender side to completion: transition, then park until
// the handoff resolves. Returns completed iff the value was delivered.
func (h *handoff[V]) asSender(v V) outcome {
	h.putValue(v)
	_, r := h.wait()
	return r
}

// asReceiver plays the receiver side to completion. The returned value is
// meaningful iff the outcome is completed.
func (h *handoff[V]) asReceiver() (V, outcome) {
	h.markReader()
	return h.wait()
}

// proceed attempts to commit: Ready becomes Done(completed); any other live
// phase becomes Done(cancelled). Once Done, proceed returns the stored
// outcome without changing it. Both parked parties are released.
func (h *handoff[V]) proceed() outcome {
	h.mu.Lock()
	if h.kind == phaseDone {
		r := h.result
		h.mu.Unlock()
		return r
	}
	if h.kind == phaseReady {
		h.result = completed
	} else {
		h.result = cancelled
	}
	h.kind = phaseDone
	r := h.result
	h.mu.Unlock()

	h.done.Signal()
	return r
}

// cancel forces Done(cancelled) unless the handoff is already Done, in which
// case the stored outcome is returned unchanged. Idempotent; releases both
// parked parties.
func (h *handoff[V]) cancel() outcome {
	h.mu.Lock()
	if h.kind == phaseDone {
		r := h.result
		h.mu.Unlock()
		return r
	}
	h.kind = phaseDone
	h.result = cancelled
	h.mu.Unlock()

	h.done.Signal()
	return cancelled
}

// isReady reports whether the handoff is in phaseReady or phaseDone. This is
// the window a selector inspects between arming and committing.
func (h *handoff[V]) isReady() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.kind == phaseReady || h.kind == phaseDone
}
