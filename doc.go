// Package rendezvous provides CSP-style synchronous communication primitives:
// unbuffered channels whose Send and Recv complete only by pairing with each
// other, and a multi-way nondeterministic Select over candidate operations.
//
// Constructors
//   - New[V](config): constructor that accepts a *Config (nil means defaults).
//   - NewOptions[V](opts ...Option): options-based constructor. Prefer this
//     in new code.
//
// Rendezvous
// A send completes only when paired with a receive on the same channel, and
// vice versa. Each potential pairing is mediated by a one-shot handoff object;
// when a handoff is cancelled (a Select backed out of it), the blocked party
// transparently retries against current channel state. Within one channel,
// waiters pair in FIFO order.
//
// Blocking
// Send and Recv park the calling goroutine until the exchange completes. No
// lock is ever held across a wait. There is no close operation and no
// per-operation deadline; receiving on a channel that will never see a sender
// parks forever. A Select case peered with a timer-driven sender is the
// supported way to bound a wait.
//
// Workers
// Deferred ready callbacks and default commits run on a spawn.Spawner. A
// parked rendezvous never occupies a spawner slot, so a bounded spawner only
// ever runs short notification functions and cannot be exhausted by blocked
// channel operations.
package rendezvous
