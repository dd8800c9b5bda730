//go:build cgo

package libcec

/*
#cgo pkg-config: libcec
#include <stdlib.h>
#include <stdint.h>
#include <libcec/cecc.h>

extern void owlLogMessage(void*, cec_log_message*);
extern void owlKeyPress(void*, cec_keypress*);
extern void owlCommandReceived(void*, cec_command*);
extern void owlConfigurationChanged(void*, libcec_configuration*);
extern void owlAlert(void*, int, int, void*);
extern int owlMenuStateChanged(void*, int);
extern void owlSourceActivated(void*, int, uint8_t);

static void owl_log_message(void* p, const cec_log_message* m) { owlLogMessage(p, (cec_log_message*)m); }
static void owl_key_press(void* p, const cec_keypress* k) { owlKeyPress(p, (cec_keypress*)k); }
static void owl_command_received(void* p, const cec_command* c) { owlCommandReceived(p, (cec_command*)c); }
static void owl_configuration_changed(void* p, const libcec_configuration* c) { owlConfigurationChanged(p, (libcec_configuration*)c); }
static void owl_alert(void* p, const libcec_alert a, const libcec_parameter param) {
	owlAlert(p, (int)a, (int)param.paramType, param.paramData);
}
static int owl_menu_state_changed(void* p, const cec_menu_state s) { return owlMenuStateChanged(p, (int)s); }
static void owl_source_activated(void* p, const cec_logical_address a, const uint8_t on) { owlSourceActivated(p, (int)a, on); }

static ICECCallbacks* owl_callbacks_new(void) {
	ICECCallbacks* cb = (ICECCallbacks*)calloc(1, sizeof(ICECCallbacks));
	if (cb == NULL) {
		return NULL;
	}
	cb->logMessage = owl_log_message;
	cb->keyPress = owl_key_press;
	cb->commandReceived = owl_command_received;
	cb->configurationChanged = owl_configuration_changed;
	cb->alert = owl_alert;
	cb->menuStateChanged = owl_menu_state_changed;
	cb->sourceActivated = owl_source_activated;
	return cb;
}

static void* owl_handle_new(uintptr_t h) {
	uintptr_t* p = (uintptr_t*)malloc(sizeof(uintptr_t));
	if (p != NULL) {
		*p = h;
	}
	return p;
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/owl-cec/owl/pkg/cec"
)

// callbackTable is the C side of one connection's callbacks: the function
// table libcec calls through and the param it passes back.
type callbackTable struct {
	fns    *C.ICECCallbacks
	param  unsafe.Pointer
	handle cgo.Handle
}

func newCallbackTable(cb *cec.Callbacks) (*callbackTable, error) {
	fns := C.owl_callbacks_new()
	if fns == nil {
		return nil, ErrInitialise
	}
	h := cgo.NewHandle(cb)
	param := C.owl_handle_new(C.uintptr_t(h))
	if param == nil {
		h.Delete()
		C.free(unsafe.Pointer(fns))
		return nil, ErrInitialise
	}
	return &callbackTable{fns: fns, param: param, handle: h}, nil
}

// free releases the table. libcec must no longer reference it.
func (t *callbackTable) free() {
	if t == nil {
		return
	}
	C.free(t.param)
	C.free(unsafe.Pointer(t.fns))
	t.handle.Delete()
}

// lookupCallbacks recovers the callback table from a callbackParam.
func lookupCallbacks(param unsafe.Pointer) (cb *cec.Callbacks) {
	if param == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			cb = nil
		}
	}()
	h := cgo.Handle(*(*C.uintptr_t)(param))
	cb, _ = h.Value().(*cec.Callbacks)
	return cb
}
