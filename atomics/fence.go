// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomics

import "code.hybscloud.com/atomix"

// Fence is a hardware memory barrier with the given ordering.
//
// Acquire and Release issue the matching one-sided atomix barrier; AcqRel
// and SeqCst issue the full barrier. A Relaxed fence is a no-op, as in
// C11.
func Fence(o Ordering) {
	switch o {
	case Relaxed:
	case Acquire:
		atomix.BarrierAcquire()
	case Release:
		atomix.BarrierRelease()
	case AcqRel, SeqCst:
		atomix.BarrierAcqRel()
	default:
		panic("atomics: invalid fence ordering " + o.String())
	}
}

// CompilerFence prevents the compiler from moving memory accesses across
// the call without emitting a hardware barrier.
//
// The Go compiler never reorders memory accesses across a call it cannot
// inline, which is what this function is.
//
//go:noinline
func CompilerFence(o Ordering) {
	switch o {
	case Relaxed, Acquire, Release, AcqRel, SeqCst:
	default:
		panic("atomics: invalid fence ordering " + o.String())
	}
}
