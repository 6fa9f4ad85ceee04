package rendezvous

// Case is one candidate communication in a Select: a receive from, or a send
// to, a specific channel. A Case belongs to a single Select invocation at a
// time.
type Case interface {
	// arm attaches the case to its channel and installs notify as the
	// readiness signal. It advances the case's own half of the handoff and
	// never parks.
	arm(notify func()) armed

	// fire runs the case's user callback after the case has been committed.
	fire()
}

// RecvFrom returns a case that receives a value from c and, if chosen,
// invokes fn with the received value. fn may be nil.
func RecvFrom[V any](c *Channel[V], fn func(V)) Case {
	return &recvCase[V]{c: c, fn: fn}
}

// SendTo returns a case that sends v to c and, if chosen, invokes fn after
// the value has been handed over. fn may be nil.
func SendTo[V any](c *Channel[V], v V, fn func()) Case {
	return &sendCase[V]{c: c, v: v, fn: fn}
}

type recvCase[V any] struct {
	c  *Channel[V]
	fn func(V)
	h  *handoff[V] // armed handoff of the current round
}

func (rc *recvCase[V]) arm(notify func()) armed {
	rc.h = rc.c.tryArmRecv(notify)
	return rc.h
}

func (rc *recvCase[V]) fire() {
	// The handoff is Done(completed) by the time fire runs; wait returns the
	// delivered value without parking.
	v, r := rc.h.wait()
	if r == completed && rc.fn != nil {
		rc.fn(v)
	}
}

type sendCase[V any] struct {
	c  *Channel[V]
	v  V
	fn func()
	h  *handoff[V]
}

func (sc *sendCase[V]) arm(notify func()) armed {
	sc.h = sc.c.tryArmSend(sc.v, notify)
	return sc.h
}

func (sc *sendCase[V]) fire() {
	if sc.fn != nil {
		sc.fn()
	}
}
