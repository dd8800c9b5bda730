//go:build cgo

package libcec

/*
#include <stdint.h>
#include <libcec/cecc.h>
*/
import "C"

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/owl-cec/owl/pkg/cec"
	"github.com/owl-cec/owl/pkg/wire"
)

// The exported functions below are invoked by libcec on its own threads.
// None of them may block or let a panic escape.

func orphan(event string) {
	slog.Default().Log(context.Background(), cec.LevelTrace, "callback without handle", "event", event)
}

//export owlLogMessage
func owlLogMessage(param unsafe.Pointer, msg *C.cec_log_message) {
	cb := lookupCallbacks(param)
	if cb == nil {
		orphan("log_message")
		return
	}
	if msg == nil {
		cb.HandleLogMessage(nil)
		return
	}
	w := wireLogMessage(msg)
	cb.HandleLogMessage(&w)
}

//export owlKeyPress
func owlKeyPress(param unsafe.Pointer, key *C.cec_keypress) {
	cb := lookupCallbacks(param)
	if cb == nil {
		orphan("key_press")
		return
	}
	if key == nil {
		cb.HandleKeyPress(nil)
		return
	}
	w := wireKeypress(key)
	cb.HandleKeyPress(&w)
}

//export owlCommandReceived
func owlCommandReceived(param unsafe.Pointer, cmd *C.cec_command) {
	cb := lookupCallbacks(param)
	if cb == nil {
		orphan("command")
		return
	}
	if cmd == nil {
		cb.HandleCommand(nil)
		return
	}
	w := wireCommand(cmd)
	cb.HandleCommand(&w)
}

//export owlConfigurationChanged
func owlConfigurationChanged(param unsafe.Pointer, cfg *C.libcec_configuration) {
	cb := lookupCallbacks(param)
	if cb == nil {
		orphan("configuration_changed")
		return
	}
	if cfg == nil {
		cb.HandleConfigurationChanged(nil)
		return
	}
	w := wireConfiguration(cfg)
	cb.HandleConfigurationChanged(&w)
}

//export owlAlert
func owlAlert(param unsafe.Pointer, alert C.int, paramType C.int, data unsafe.Pointer) {
	cb := lookupCallbacks(param)
	if cb == nil {
		orphan("alert")
		return
	}
	p := wire.Parameter{Type: int32(paramType)}
	if paramType == C.int(cec.ParameterString) && data != nil {
		p.Data = []byte(C.GoString((*C.char)(data)))
	}
	cb.HandleAlert(int32(alert), p)
}

//export owlMenuStateChanged
func owlMenuStateChanged(param unsafe.Pointer, state C.int) C.int {
	cb := lookupCallbacks(param)
	if cb == nil {
		orphan("menu_state_changed")
		return C.int(cec.MenuStateResult)
	}
	return C.int(cb.HandleMenuStateChanged(int32(state)))
}

//export owlSourceActivated
func owlSourceActivated(param unsafe.Pointer, addr C.int, activated C.uint8_t) {
	cb := lookupCallbacks(param)
	if cb == nil {
		orphan("source_activated")
		return
	}
	cb.HandleSourceActivated(int32(addr), uint8(activated))
}
