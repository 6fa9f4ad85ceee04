package rendezvous

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/rendezvous/spawn"
)

func TestRecvAsync_DeliversOnExecutor(t *testing.T) {
	c := New[int](nil)

	var execUsed atomic.Int32
	exec := spawn.Func(func(fn func()) {
		execUsed.Add(1)
		go fn()
	})

	got := make(chan int, 1)
	RecvAsync(c, exec, func(v int) { got <- v })

	c.Send(5)
	require.Equal(t, 5, <-got)
	require.Eventually(t, func() bool { return execUsed.Load() == 1 },
		time.Second, time.Millisecond)
}

func TestRecvAsync_NilExecutor(t *testing.T) {
	c := New[string](nil)

	got := make(chan string, 1)
	RecvAsync(c, nil, func(v string) { got <- v })

	c.Send("value")
	require.Equal(t, "value", <-got)
}

func TestSendAsync_DeliversAndNotifies(t *testing.T) {
	c := New[int](nil)

	done := make(chan struct{})
	SendAsync(c, 7, nil, func() { close(done) })

	require.Equal(t, 7, c.Recv())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("completion callback did not run")
	}
}

func TestSendAsync_NilCallback(t *testing.T) {
	c := New[int](nil)
	SendAsync(c, 9, nil, nil)
	require.Equal(t, 9, c.Recv())
}
