package rendezvous

// Sender is the write capability of a channel.
type Sender[V any] interface {
	// Send blocks until v has been delivered to some receiver.
	Send(v V)
}

// Receiver is the read capability of a channel.
type Receiver[V any] interface {
	// Recv blocks until a value has been delivered to the caller.
	Recv() V
}

// SendOnly returns a write-only view of c.
func (c *Channel[V]) SendOnly() Sender[V] { return sendView[V]{c} }

// RecvOnly returns a read-only view of c.
func (c *Channel[V]) RecvOnly() Receiver[V] { return recvView[V]{c} }

type sendView[V any] struct{ c *Channel[V] }

func (s sendView[V]) Send(v V) { s.c.Send(v) }

type recvView[V any] struct{ c *Channel[V] }

func (r recvView[V]) Recv() V { return r.c.Recv() }
