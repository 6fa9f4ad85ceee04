package rendezvous

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/rendezvous/spawn"
)

// inlineSpawner runs spawned functions synchronously on the caller.
var inlineSpawner = spawn.Func(func(fn func()) { fn() })

func TestHandoff_Exchange(t *testing.T) {
	h := newHandoff[int](inlineSpawner, nil) // default committer

	sent := make(chan outcome, 1)
	go func() { sent <- h.asSender(42) }()

	v, r := h.asReceiver()
	require.Equal(t, completed, r)
	require.Equal(t, 42, v)
	require.Equal(t, completed, <-sent)
}

func TestHandoff_CancelUnparksSender(t *testing.T) {
	h := newHandoff[int](spawn.Default(), func() {}) // readiness is a signal only

	sent := make(chan outcome, 1)
	go func() { sent <- h.asSender(7) }()

	// Valid whether or not the sender has arrived yet: cancel forces
	// Done(cancelled) from any live phase.
	h.cancel()
	require.Equal(t, cancelled, <-sent)
}

func TestHandoff_ProceedIdempotent(t *testing.T) {
	h := newHandoff[string](spawn.Default(), func() {})
	h.putValue("x")
	h.markReader()
	require.True(t, h.isReady())

	require.Equal(t, completed, h.proceed())
	require.Equal(t, completed, h.proceed())
	// cancel after Done reports the stored outcome, it does not overwrite it.
	require.Equal(t, completed, h.cancel())

	v, r := h.wait()
	require.Equal(t, completed, r)
	require.Equal(t, "x", v)
}

func TestHandoff_CancelBeforeReady(t *testing.T) {
	h := newHandoff[int](spawn.Default(), func() {})
	h.putValue(1)
	require.False(t, h.isReady())

	require.Equal(t, cancelled, h.cancel())
	require.Equal(t, cancelled, h.proceed())
	require.True(t, h.isReady()) // Done counts as ready
}

func TestHandoff_ReadyCallbackFiresOnce(t *testing.T) {
	var count atomic.Int32
	h := newHandoff[int](spawn.Default(), func() { count.Add(1) })

	h.markReader()
	require.Equal(t, int32(0), count.Load())
	h.putValue(9) // second arrival enters Ready and fires the callback
	require.Equal(t, int32(1), count.Load())
}

func TestHandoff_OnReadyAfterReadySchedules(t *testing.T) {
	h := newHandoff[int](inlineSpawner, func() {})
	h.putValue(3)
	h.markReader()

	fired := false
	h.onReady(func() { fired = true })
	require.True(t, fired)
}

func TestHandoff_OnReadyAfterCancelSchedules(t *testing.T) {
	h := newHandoff[int](inlineSpawner, func() {})
	h.cancel()

	fired := false
	h.onReady(func() { fired = true })
	require.True(t, fired)
}

func TestHandoff_SideReusePanics(t *testing.T) {
	t.Run("sender", func(t *testing.T) {
		h := newHandoff[int](spawn.Default(), func() {})
		h.putValue(1)
		require.PanicsWithValue(t, ErrHandoffReused, func() { h.putValue(2) })
	})

	t.Run("receiver", func(t *testing.T) {
		h := newHandoff[int](spawn.Default(), func() {})
		h.markReader()
		require.PanicsWithValue(t, ErrHandoffReused, func() { h.markReader() })
	})
}

func TestHandoff_ArrivalAfterDoneIsCancelled(t *testing.T) {
	h := newHandoff[int](spawn.Default(), func() {})
	h.cancel()

	require.Equal(t, cancelled, h.asSender(5))

	h2 := newHandoff[int](spawn.Default(), func() {})
	h2.cancel()
	_, r := h2.asReceiver()
	require.Equal(t, cancelled, r)
}
