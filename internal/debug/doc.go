// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package debug gates misuse checks that are compiled in only for debug
// builds (build tag rtdebug).
//
// Release builds leave undefined-behavior class misuse unchecked: double
// send on a oneshot, writes to a finished hasher, out-of-range deque
// access. Build with -tags rtdebug to turn those into panics.
package debug

// Assert panics with msg when debug checks are enabled and cond is false.
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		panic(msg)
	}
}
