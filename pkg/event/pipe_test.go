package event

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeKeepsEveryEventWithoutReceiver(t *testing.T) {
	p := NewPipe()
	defer p.Close()

	const n = 500
	for i := 0; i < n; i++ {
		key := KeyVolumeUp
		if i%2 == 1 {
			key = KeyVolumeDown
		}
		require.True(t, p.Push(Press(key)), "push %d", i)
	}
	require.True(t, p.Push(Release(KeyVolumeUp)))

	for i := 0; i < n; i++ {
		want := Press(KeyVolumeUp)
		if i%2 == 1 {
			want = Press(KeyVolumeDown)
		}
		select {
		case got := <-p.Events():
			require.Equal(t, want, got, "event %d", i)
		case <-time.After(2 * time.Second):
			t.Fatalf("event %d not delivered", i)
		}
	}
	assert.Equal(t, Release(KeyVolumeUp), <-p.Events())
	assert.Zero(t, p.Pending())
}

func TestPipeClose(t *testing.T) {
	p := NewPipe()
	require.True(t, p.Push(Focus()))
	p.Close()
	p.Close()
	assert.False(t, p.Push(Focus()))

	var got []Event
	for e := range p.Events() {
		got = append(got, e)
	}
	assert.Equal(t, []Event{Focus()}, got)
}

func TestRegistrySingleSlot(t *testing.T) {
	var r Registry
	assert.False(t, r.Deliver(Focus()), "no sink")

	a, b := NewPipe(), NewPipe()
	defer a.Close()
	defer b.Close()
	unregister, err := r.Register(a)
	require.NoError(t, err)

	_, err = r.Register(b)
	assert.ErrorIs(t, err, ErrRegistryInUse)

	assert.True(t, r.Deliver(Suspend()))
	assert.Equal(t, Suspend(), <-a.Events())

	unregister()
	unregister()
	assert.False(t, r.Deliver(Suspend()))

	unregisterB, err := r.Register(b)
	require.NoError(t, err)
	defer unregisterB()
	unregister() // stale handle leaves b in place
	assert.True(t, r.Deliver(Resume()))
	assert.Equal(t, Resume(), <-b.Events())
}

func TestRegistryConcurrentDeliver(t *testing.T) {
	var r Registry
	p := NewPipe()
	defer p.Close()
	unregister, err := r.Register(p)
	require.NoError(t, err)
	defer unregister()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				r.Deliver(Press(KeyVolumeUp))
			}
		}()
	}
	wg.Wait()
	for i := 0; i < 100; i++ {
		assert.Equal(t, Press(KeyVolumeUp), <-p.Events())
	}
	assert.Zero(t, p.Pending())
}
