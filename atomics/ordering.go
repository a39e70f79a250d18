// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomics

// Ordering is a memory ordering constraint with C11 semantics.
//
// The numeric values are those of C11 memory_order (and the compiler
// builtins' __ATOMIC_* constants), so orderings can be passed across an
// ABI boundary unchanged. memory_order_consume (1) is not provided.
type Ordering int32

const (
	// Relaxed orders nothing; only atomicity of the access is guaranteed.
	Relaxed Ordering = 0
	// Acquire keeps later accesses from moving before this load.
	Acquire Ordering = 2
	// Release keeps earlier accesses from moving after this store.
	Release Ordering = 3
	// AcqRel is Acquire for the load half and Release for the store half
	// of a read-modify-write.
	AcqRel Ordering = 4
	// SeqCst adds a single total order over all SeqCst operations.
	SeqCst Ordering = 5
)

// String returns the ordering name.
func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "Relaxed"
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	case AcqRel:
		return "AcqRel"
	case SeqCst:
		return "SeqCst"
	}
	return "Ordering(invalid)"
}

// loadOrder returns the ordering for the load half of a read-modify-write.
func (o Ordering) loadOrder() Ordering {
	switch o {
	case Release:
		return Relaxed
	case AcqRel:
		return Acquire
	}
	return o
}

func checkLoad(o Ordering) {
	switch o {
	case Relaxed, Acquire, SeqCst:
	default:
		panic("atomics: invalid load ordering " + o.String())
	}
}

func checkStore(o Ordering) {
	switch o {
	case Relaxed, Release, SeqCst:
	default:
		panic("atomics: invalid store ordering " + o.String())
	}
}

func checkRMW(o Ordering) {
	switch o {
	case Relaxed, Acquire, Release, AcqRel, SeqCst:
	default:
		panic("atomics: invalid ordering " + o.String())
	}
}
