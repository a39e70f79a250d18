// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package park provides a goroutine park/unpark primitive.
//
// A Thread is a handle owned by one blocking goroutine. Unpark deposits a
// single wakeup token; Park consumes it, blocking until one is available.
// Tokens do not accumulate: any number of Unpark calls before a Park
// satisfy exactly one Park. Park may also return without a matching
// Unpark having happened after the caller's last check, so callers re-check
// their own condition in a loop.
package park

// Thread is a parkable handle for the goroutine that created it.
type Thread struct {
	token chan struct{}
}

// Current returns a handle for the calling goroutine.
//
// Go has no goroutine identity, so each call yields a fresh handle. The
// caller hands the handle to whoever will wake it, then parks on it.
func Current() *Thread {
	return &Thread{token: make(chan struct{}, 1)}
}

// Park blocks until a token is available and consumes it.
func (t *Thread) Park() {
	<-t.token
}

// Unpark makes a token available, waking the parked goroutine if any.
// Never blocks.
func (t *Thread) Unpark() {
	select {
	case t.token <- struct{}{}:
	default:
	}
}
