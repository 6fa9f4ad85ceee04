package spawn

import "github.com/creachadair/taskgroup"

// Detached is a spawner that runs every function on its own worker, with no
// bound on concurrency and no completion tracking.
func Detached() Spawner { return detached{} }

type detached struct{}

func (detached) Spawn(fn func()) {
	taskgroup.Go(func() error { fn(); return nil })
}
