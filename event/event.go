// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package event

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/rtcore/atomics"
	"code.hybscloud.com/rtcore/internal/park"
)

// spinLimit is the number of signaled-flag polls before a waiter parks.
const spinLimit = 64

// waiter is a node of the intrusive waiter list. A node is written only
// by its own goroutine until it is published by CAS; after that, only the
// setter that detached the list touches it, and the two sides synchronize
// through signaled alone.
type waiter struct {
	next     *waiter
	thread   *park.Thread
	signaled atomics.Bool
}

// setMarker's address encodes the SET state. nil encodes RESET.
var setMarker waiter

var setState = &setMarker

// Event is a manual-reset signal that any number of goroutines can wait
// on. The zero value is reset.
//
// The state is one pointer-sized word:
//
//	nil        RESET
//	setState   SET
//	other      WAITING: head of the waiter list
//
// An Event must not be copied after first use.
type Event struct {
	state atomix.Pointer[waiter]
}

// New returns a reset Event.
func New() *Event {
	return &Event{}
}

// NewSet returns an Event that is already set.
func NewSet() *Event {
	e := &Event{}
	e.state.StoreRelease(setState)
	return e
}

// IsSet reports whether the event is set. A true result happens after
// the Set that produced it.
func (e *Event) IsSet() bool {
	return e.state.LoadAcquire() == setState
}

// Set moves the event to SET and wakes every waiter. Setting a set event
// is a no-op.
func (e *Event) Set() {
	w := e.state.SwapAcqRel(setState)
	if w == nil || w == setState {
		return
	}
	// The list is detached and owned by this goroutine.
	for w != nil {
		next, thread := w.next, w.thread
		// Once signaled is visible the waiter may return; read nothing
		// from w past this store.
		w.signaled.Store(true, atomics.Release)
		thread.Unpark()
		w = next
	}
}

// Reset moves a set event back to RESET. It is a no-op unless the event
// is exactly SET, so queued waiters are never disturbed.
func (e *Event) Reset() {
	e.state.CompareAndSwapAcqRel(setState, nil)
}

// Wait blocks until the event is set. Returns at once if it already is.
func (e *Event) Wait() {
	s := e.state.LoadAcquire()
	if s == setState {
		return
	}

	w := &waiter{thread: park.Current()}
	for {
		if s == setState {
			return
		}
		w.next = s
		if e.state.CompareAndSwapAcqRel(s, w) {
			break
		}
		s = e.state.LoadAcquire()
	}

	sw := spin.Wait{}
	for range spinLimit {
		if w.signaled.Load(atomics.Acquire) {
			return
		}
		sw.Once()
	}
	for !w.signaled.Load(atomics.Acquire) {
		w.thread.Park()
	}
}
