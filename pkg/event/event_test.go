package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-cec/owl/pkg/dispatch"
)

func TestEventCommand(t *testing.T) {
	tests := []struct {
		event Event
		want  dispatch.Command
	}{
		{Suspend(), dispatch.PowerOff()},
		{Resume(), dispatch.PowerOn()},
		{Focus(), dispatch.Focus()},
		{Press(KeyVolumeUp), dispatch.Press(dispatch.ButtonVolumeUp)},
		{Press(KeyVolumeDown), dispatch.Press(dispatch.ButtonVolumeDown)},
		{Press(KeyVolumeMute), dispatch.Press(dispatch.ButtonVolumeMute)},
		{Release(KeyVolumeUp), dispatch.Release(dispatch.ButtonVolumeUp)},
		{Release(KeyVolumeDown), dispatch.Release(dispatch.ButtonVolumeDown)},
		{Release(KeyVolumeMute), dispatch.Release(dispatch.ButtonVolumeMute)},
	}
	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			got, err := tt.event.Command()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventCommandInvalid(t *testing.T) {
	for _, e := range []Event{{}, {Kind: KindPress}, {Kind: KindRelease, Key: Key(9)}, {Kind: Kind(9)}} {
		_, err := e.Command()
		assert.ErrorIs(t, err, ErrUnknownEvent, e.String())
	}
}

func TestParseEvent(t *testing.T) {
	ok := map[string]Event{
		"suspend":             Suspend(),
		"Resume":              Resume(),
		" focus ":             Focus(),
		"press up":            Press(KeyVolumeUp),
		"press volume_down":   Press(KeyVolumeDown),
		"release mute":        Release(KeyVolumeMute),
		"release  volume_up ": Release(KeyVolumeUp),
	}
	for in, want := range ok {
		got, err := ParseEvent(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "press", "suspend up", "press loud", "jump", "press up now"} {
		_, err := ParseEvent(in)
		assert.ErrorIs(t, err, ErrUnknownEvent, in)
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "press volume_up", Press(KeyVolumeUp).String())
	assert.Equal(t, "suspend", Suspend().String())
	assert.Equal(t, "Key(7)", Key(7).String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
	assert.Equal(t, dispatch.ButtonNone, Key(7).Button())
}
