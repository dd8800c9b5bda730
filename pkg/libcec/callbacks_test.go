//go:build cgo

package libcec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/owl-cec/owl/pkg/cec"
)

func TestCallbacksWithoutHandleAreTraced(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: cec.LevelTrace})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	owlLogMessage(nil, nil)
	assert.Contains(t, buf.String(), "event=log_message")

	buf.Reset()
	owlAlert(nil, 0, 0, nil)
	assert.Contains(t, buf.String(), "event=alert")
}
