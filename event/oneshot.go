// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package event

import (
	"code.hybscloud.com/rtcore"
	"code.hybscloud.com/rtcore/atomics"
	"code.hybscloud.com/rtcore/internal/debug"
)

// Oneshot carries a single value from one sender to any number of
// receivers.
//
// The value is written once, before the embedded Event is set; receivers
// read it only after observing the Event set. Sending twice is misuse,
// checked only in debug builds.
type Oneshot[T any] struct {
	ev    Event
	value T
	sent  atomics.Bool // debug builds only
}

var _ rtcore.Receiver[int] = (*Oneshot[int])(nil)

// NewOneshot returns an empty Oneshot.
func NewOneshot[T any]() *Oneshot[T] {
	return &Oneshot[T]{}
}

// FromValue returns a Oneshot that already holds v.
func FromValue[T any](v T) *Oneshot[T] {
	o := &Oneshot[T]{value: v}
	o.sent.Store(true, atomics.Relaxed)
	o.ev.state.StoreRelease(setState)
	return o
}

// Send stores v and wakes all receivers. It must be called at most once.
func (o *Oneshot[T]) Send(v T) {
	if debug.Enabled {
		debug.Assert(!o.sent.Swap(true, atomics.Relaxed), "event: Oneshot sent twice")
	}
	o.value = v
	o.ev.Set()
}

// Recv blocks until a value has been sent and returns it. Any number of
// goroutines may Recv; each observes the same value.
func (o *Oneshot[T]) Recv() T {
	o.ev.Wait()
	return o.value
}

// TryRecv returns the value if it has been sent.
// Returns (zero-value, ErrWouldBlock) otherwise.
func (o *Oneshot[T]) TryRecv() (T, error) {
	if !o.ev.IsSet() {
		var zero T
		return zero, rtcore.ErrWouldBlock
	}
	return o.value, nil
}

// IsReady reports whether a value has been sent.
func (o *Oneshot[T]) IsReady() bool {
	return o.ev.IsSet()
}
