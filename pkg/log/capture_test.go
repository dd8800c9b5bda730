package log

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-cec/owl/pkg/cec"
)

func fixedSession(r *recordingLogger) *Session {
	ts := time.Unix(1700000000, 0).UTC()
	return &Session{ID: "sess", Port: "/dev/cec0", Logger: r, Now: func() time.Time { return ts }}
}

func TestNewSession(t *testing.T) {
	s := NewSession(nil)
	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
	s.Emit(Event{}) // noop logger
	assert.NotEqual(t, s.ID, NewSession(nil).ID)
}

func TestEmitStamps(t *testing.T) {
	r := &recordingLogger{}
	s := fixedSession(r)
	s.Emit(Event{Category: CategoryLog})
	s.Emit(Event{Port: "/dev/other", Timestamp: time.Unix(5, 0)})

	events := r.all()
	require.Len(t, events, 2)
	assert.Equal(t, "sess", events[0].SessionID)
	assert.Equal(t, "/dev/cec0", events[0].Port)
	assert.Equal(t, int64(1700000000), events[0].Timestamp.Unix())
	assert.Equal(t, "/dev/other", events[1].Port)
	assert.Equal(t, int64(5), events[1].Timestamp.Unix())

	var nilSession *Session
	nilSession.Emit(Event{})
}

func TestStateAndFail(t *testing.T) {
	r := &recordingLogger{}
	s := fixedSession(r)
	s.State(StateEntityDispatcher, "starting", "running", "")
	s.Fail(LayerBus, "open", nil)
	s.Fail(LayerBus, "open", errors.New("no adapter"))

	events := r.all()
	require.Len(t, events, 2)
	assert.Equal(t, CategoryState, events[0].Category)
	assert.Equal(t, "running", events[0].StateChange.NewState)
	assert.Equal(t, CategoryError, events[1].Category)
	assert.Equal(t, "no adapter", events[1].Error.Message)
	assert.Equal(t, "open", events[1].Error.Context)
}

func TestCaptureRecordsAndForwards(t *testing.T) {
	r := &recordingLogger{}
	var gotCmd cec.Command
	var gotKey cec.Keypress
	next := &cec.Callbacks{
		OnCommand:  func(c cec.Command) { gotCmd = c },
		OnKeyPress: func(k cec.Keypress) { gotKey = k },
	}
	cb := Capture(fixedSession(r), next)

	cmd, err := cec.NewCommand(cec.AddressTV, cec.AddressPlaybackDevice1, cec.OpcodeStandby)
	require.NoError(t, err)
	cb.OnCommand(cmd)
	cb.OnKeyPress(cec.Keypress{Keycode: cec.KeyVolumeUp, Duration: 100 * time.Millisecond})
	cb.OnLogMessage(cec.LogMessage{Message: "hello", Level: cec.LogNotice})
	cb.OnAlert(cec.AlertConnectionLost, cec.Parameter{})
	cb.OnMenuStateChanged(cec.MenuActivated)
	cb.OnSourceActivated(cec.SourceActivation{Address: cec.MustKnownAddress(cec.AddressTV), Activated: true})

	assert.Equal(t, cmd, gotCmd)
	assert.Equal(t, cec.KeyVolumeUp, gotKey.Keycode)

	events := r.all()
	require.Len(t, events, 6)
	for _, e := range events {
		assert.Equal(t, DirectionIn, e.Direction)
		assert.Equal(t, LayerBus, e.Layer)
		assert.Equal(t, "sess", e.SessionID)
	}
	assert.Equal(t, CategoryCommand, events[0].Category)
	assert.Equal(t, uint8(cec.OpcodeStandby), events[0].Frame.Opcode)
	assert.Equal(t, int8(cec.AddressTV), events[0].Frame.Initiator)
	assert.Nil(t, events[0].Frame.Parameters)
	assert.Equal(t, uint8(cec.KeyVolumeUp), events[1].Key.Keycode)
	assert.Equal(t, "hello", events[2].LibLog.Message)
	assert.Equal(t, CategoryAlert, events[3].Category)
	assert.Equal(t, CategoryMenu, events[4].Category)
	assert.Equal(t, "active", events[5].StateChange.NewState)
	assert.Equal(t, "TV", events[5].StateChange.Reason)
}

func TestCaptureNilNext(t *testing.T) {
	r := &recordingLogger{}
	cb := Capture(fixedSession(r), nil)
	cb.OnMenuStateChanged(cec.MenuDeactivated)
	assert.Len(t, r.all(), 1)
}
