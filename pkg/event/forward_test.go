package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-cec/owl/pkg/dispatch"
	"github.com/owl-cec/owl/pkg/log"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []dispatch.Command
	err  error
}

func (s *recordingSender) Send(_ context.Context, cmd dispatch.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, cmd)
	return s.err
}

type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordingLogger) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func TestForwardConvertsInOrder(t *testing.T) {
	p := NewPipe()
	p.Push(Resume())
	p.Push(Press(KeyVolumeUp))
	p.Push(Event{Kind: KindPress}) // skipped
	p.Push(Release(KeyVolumeUp))
	p.Push(Suspend())
	p.Close()

	s := &recordingSender{}
	capture := &recordingLogger{}
	err := Forward(context.Background(), p.Events(), s, nil, &log.Session{ID: "s", Logger: capture})
	require.NoError(t, err)

	assert.Equal(t, []dispatch.Command{
		dispatch.PowerOn(),
		dispatch.Press(dispatch.ButtonVolumeUp),
		dispatch.Release(dispatch.ButtonVolumeUp),
		dispatch.PowerOff(),
	}, s.sent)
	assert.Len(t, capture.events, 5)
	assert.Equal(t, log.LayerSource, capture.events[0].Layer)
	assert.Equal(t, "resume", capture.events[0].StateChange.NewState)
}

func TestForwardStopsWithDispatcher(t *testing.T) {
	p := NewPipe()
	defer p.Close()
	p.Push(Focus())
	p.Push(Focus())

	s := &recordingSender{err: dispatch.ErrStopped}
	err := Forward(context.Background(), p.Events(), s, nil, nil)
	assert.ErrorIs(t, err, dispatch.ErrStopped)
	assert.Len(t, s.sent, 1)
}

func TestForwardKeepsGoingOnSendError(t *testing.T) {
	p := NewPipe()
	p.Push(Focus())
	p.Push(Resume())
	p.Close()

	s := &recordingSender{err: errors.New("transient")}
	require.NoError(t, Forward(context.Background(), p.Events(), s, nil, nil))
	assert.Len(t, s.sent, 2)
}

func TestForwardCancel(t *testing.T) {
	p := NewPipe()
	defer p.Close()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Forward(ctx, p.Events(), &recordingSender{}, nil, nil) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Forward did not return")
	}
}
