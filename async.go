package rendezvous

import "github.com/ygrebnov/rendezvous/spawn"

// RecvAsync starts a worker that receives one value from c and hands it to
// fn on exec. It returns without waiting for the rendezvous.
//
// The worker parks until a sender arrives, so it always runs detached rather
// than on a bounded spawner. A nil exec invokes fn directly on the worker.
func RecvAsync[V any](c *Channel[V], exec spawn.Spawner, fn func(V)) {
	spawn.Default().Spawn(func() {
		v := c.Recv()
		if exec == nil {
			fn(v)
			return
		}
		exec.Spawn(func() { fn(v) })
	})
}

// SendAsync starts a worker that sends v to c and then runs fn on exec once
// the value has been handed over. fn may be nil; a nil exec runs fn directly
// on the worker. Like RecvAsync, the worker runs detached because it parks.
func SendAsync[V any](c *Channel[V], v V, exec spawn.Spawner, fn func()) {
	spawn.Default().Spawn(func() {
		c.Send(v)
		if fn == nil {
			return
		}
		if exec == nil {
			fn()
			return
		}
		exec.Spawn(fn)
	})
}
