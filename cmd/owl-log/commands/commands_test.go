package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-cec/owl/pkg/cec"
	"github.com/owl-cec/owl/pkg/log"
)

const sessionID = "abc12345-6789-0123-4567-890abcdef012"

var baseTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: baseTime,
			SessionID: sessionID,
			Direction: log.DirectionIn,
			Layer:     log.LayerBus,
			Category:  log.CategoryCommand,
			Port:      "/dev/cec0",
			Frame: &log.FrameEvent{
				Initiator:   int8(cec.AddressTV),
				Destination: 15,
				Opcode:      uint8(cec.OpcodeStandby),
				OpcodeSet:   true,
				EOM:         true,
			},
		},
		{
			Timestamp: baseTime.Add(time.Second),
			SessionID: sessionID,
			Direction: log.DirectionOut,
			Layer:     log.LayerDispatch,
			Category:  log.CategoryDispatch,
			Dispatch: &log.DispatchEvent{
				Command: "power_off",
				Outcome: log.OutcomeSent,
				Latency: 1500 * time.Microsecond,
			},
		},
		{
			Timestamp: baseTime.Add(2 * time.Second),
			SessionID: sessionID,
			Direction: log.DirectionOut,
			Layer:     log.LayerDispatch,
			Category:  log.CategoryError,
			Error: &log.ErrorEventData{
				Layer:   log.LayerDispatch,
				Message: "command failed",
				Context: "press(volume_up)",
			},
		},
	}
}

func writeCapture(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.clog")
	logger, err := log.NewFileLogger(path)
	require.NoError(t, err)
	for _, e := range events {
		logger.Log(e)
	}
	require.NoError(t, logger.Close())
	return path
}

func TestFormatFrameEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0])
	out := buf.String()

	assert.Contains(t, out, "2026-01-28T10:15:32.123456Z")
	assert.Contains(t, out, "[abc12345]")
	assert.Contains(t, out, "IN")
	assert.Contains(t, out, "BUS STANDBY")
	assert.Contains(t, out, "TV -> UNREGISTERED")
	assert.Contains(t, out, "eom")
}

func TestFormatPollFrame(t *testing.T) {
	e := log.Event{Frame: &log.FrameEvent{Initiator: 1, Destination: 1}}
	assert.Equal(t, "POLL", typeLabel(e))
}

func TestFormatDispatchEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[1])
	out := buf.String()

	assert.Contains(t, out, "DISPATCH Dispatch")
	assert.Contains(t, out, "power_off: SENT in 1.500ms")
}

func TestFormatKeyEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, log.Event{
		Key: &log.KeyEvent{Keycode: uint8(cec.KeyVolumeUp), Duration: 250 * time.Millisecond},
	})
	assert.Contains(t, buf.String(), "Key: VOLUME_UP (250.000ms)")
}

func TestFormatStateChange(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, log.Event{
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityDispatcher,
			OldState: "running",
			NewState: "stopped",
			Reason:   "context canceled",
		},
	})
	out := buf.String()
	assert.Contains(t, out, "Entity: DISPATCHER")
	assert.Contains(t, out, "running -> stopped")
	assert.Contains(t, out, "Reason: context canceled")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0.500us"},
		{1500 * time.Microsecond, "1.500ms"},
		{2500 * time.Millisecond, "2.500s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}

func TestFilterOptionsBuild(t *testing.T) {
	filter, err := FilterOptions{
		Session:   sessionID,
		Layer:     "Dispatch",
		Direction: "out",
		Category:  "error",
		Opcode:    "standby",
		TimeStart: "2026-01-28T10:00:00Z",
	}.Build()
	require.NoError(t, err)

	assert.Equal(t, sessionID, filter.SessionID)
	require.NotNil(t, filter.Layer)
	assert.Equal(t, log.LayerDispatch, *filter.Layer)
	require.NotNil(t, filter.Direction)
	assert.Equal(t, log.DirectionOut, *filter.Direction)
	require.NotNil(t, filter.Category)
	assert.Equal(t, log.CategoryError, *filter.Category)
	require.NotNil(t, filter.Opcode)
	assert.Equal(t, uint8(cec.OpcodeStandby), *filter.Opcode)
	require.NotNil(t, filter.TimeStart)
	assert.Nil(t, filter.TimeEnd)
}

func TestFilterOptionsBuild_Invalid(t *testing.T) {
	tests := map[string]FilterOptions{
		"layer":      {Layer: "transport"},
		"direction":  {Direction: "sideways"},
		"category":   {Category: "snapshot"},
		"opcode":     {Opcode: "NOT_AN_OPCODE"},
		"opcode_big": {Opcode: "0x100"},
		"time_start": {TimeStart: "yesterday"},
		"time_end":   {TimeEnd: "tomorrow"},
	}
	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := opts.Build()
			assert.Error(t, err)
		})
	}
}

func TestParseOpcodeNumber(t *testing.T) {
	op, err := parseOpcode("0x36")
	require.NoError(t, err)
	assert.Equal(t, uint8(cec.OpcodeStandby), op)
}

func TestRunView(t *testing.T) {
	path := writeCapture(t, sampleEvents())

	var buf bytes.Buffer
	require.NoError(t, RunView(path, log.Filter{}, &buf))
	out := buf.String()
	assert.Contains(t, out, "STANDBY")
	assert.Contains(t, out, "power_off")
	assert.Contains(t, out, "command failed")
}

func TestRunView_Filtered(t *testing.T) {
	path := writeCapture(t, sampleEvents())
	filter, err := FilterOptions{Layer: "bus"}.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RunView(path, filter, &buf))
	assert.Contains(t, buf.String(), "STANDBY")
	assert.NotContains(t, buf.String(), "power_off")
}

func TestRunView_MissingFile(t *testing.T) {
	err := RunView(filepath.Join(t.TempDir(), "missing.clog"), log.Filter{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunStats(t *testing.T) {
	path := writeCapture(t, sampleEvents())

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))
	out := buf.String()

	assert.Contains(t, out, "Total Events: 3")
	assert.Contains(t, out, "STANDBY:")
	assert.Contains(t, out, "SENT:")
	assert.Contains(t, out, "Sessions: 1")
	assert.Contains(t, out, "Port: /dev/cec0")
	assert.Contains(t, out, "Errors: 1")
}

func TestStatsAdd(t *testing.T) {
	s := newStats()
	for _, e := range sampleEvents() {
		s.add(e)
	}
	assert.Equal(t, 3, s.TotalEvents)
	assert.Equal(t, 1, s.EventsByLayer[log.LayerBus])
	assert.Equal(t, 2, s.EventsByLayer[log.LayerDispatch])
	assert.Equal(t, 1, s.Opcodes[uint8(cec.OpcodeStandby)])
	assert.Equal(t, 1, s.Outcomes[log.OutcomeSent])
	assert.Equal(t, baseTime, s.TimeRange.Start)
	assert.Equal(t, baseTime.Add(2*time.Second), s.TimeRange.End)
}

func TestRunExport_JSONL(t *testing.T) {
	path := writeCapture(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "out.jsonl")

	require.NoError(t, RunExport(path, log.Filter{}, "jsonl", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, sessionID, first["SessionID"])
}

func TestRunExport_CSV(t *testing.T) {
	path := writeCapture(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, RunExport(path, log.Filter{}, "csv", out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "timestamp", rows[0][0])
	assert.Equal(t, "STANDBY", rows[1][6])
	assert.Contains(t, rows[2][7], "power_off: SENT")
}

func TestRunExport_UnknownFormat(t *testing.T) {
	path := writeCapture(t, sampleEvents())
	err := RunExport(path, log.Filter{}, "xml", filepath.Join(t.TempDir(), "out"))
	assert.ErrorContains(t, err, "unknown format")
}

func TestRunFilter(t *testing.T) {
	path := writeCapture(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.clog")
	filter, err := FilterOptions{Category: "dispatch"}.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RunFilter(path, filter, out, &buf))
	assert.Contains(t, buf.String(), "Filtered 1 events")

	reader, err := log.NewReader(out)
	require.NoError(t, err)
	defer reader.Close()
	e, err := reader.Next()
	require.NoError(t, err)
	require.NotNil(t, e.Dispatch)
	assert.Equal(t, "power_off", e.Dispatch.Command)
}
