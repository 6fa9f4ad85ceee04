package spawn

import "github.com/creachadair/taskgroup"

// A Limited spawner runs at most its configured number of functions
// concurrently. Spawn blocks while every slot is busy, so callers feel
// backpressure instead of queueing without bound.
type Limited struct {
	g   *taskgroup.Group
	run func(taskgroup.Task)
}

// NewLimited creates a Limited spawner with capacity n (must be > 0).
func NewLimited(n int) *Limited {
	if n <= 0 {
		panic("spawn: capacity must be > 0")
	}
	g, run := taskgroup.New(nil).Limit(n)
	return &Limited{g: g, run: run}
}

// Spawn implements Spawner. It blocks until a slot is free.
func (l *Limited) Spawn(fn func()) {
	l.run(func() error { fn(); return nil })
}

// Wait blocks until every function spawned so far has returned.
func (l *Limited) Wait() {
	l.g.Wait()
}
