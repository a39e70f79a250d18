// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomics

import (
	"math"
	"unsafe"
)

// Float is an atomic floating-point value. The zero value is +0.
//
// Comparisons in CompareExchange are bitwise: NaN matches a NaN with the
// same payload, and +0 does not match -0.
type Float[T ~float32 | ~float64] struct {
	w word
}

// float32 values are stored as their own 32-bit pattern. Widening to
// float64 would quiet a signaling NaN and lose its payload.
func fenc[T ~float32 | ~float64](v T) uint64 {
	if unsafe.Sizeof(v) == 4 {
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(float64(v))
}

func fdec[T ~float32 | ~float64](b uint64) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// Load returns the value.
func (f *Float[T]) Load(o Ordering) T {
	return fdec[T](f.w.load(o))
}

// Store sets the value.
func (f *Float[T]) Store(v T, o Ordering) {
	f.w.store(fenc(v), o)
}

// Swap sets the value and returns the previous one.
func (f *Float[T]) Swap(v T, o Ordering) T {
	return fdec[T](f.w.swap(fenc(v), o))
}

// CompareExchange stores new if the bits equal those of cur (strong).
func (f *Float[T]) CompareExchange(cur, new T, success, failure Ordering) (T, bool) {
	v, ok := f.w.compareExchange(fenc(cur), fenc(new), success, failure)
	return fdec[T](v), ok
}

// CompareExchangeWeak is the weak form of CompareExchange.
func (f *Float[T]) CompareExchangeWeak(cur, new T, success, failure Ordering) (T, bool) {
	v, ok := f.w.compareExchangeWeak(fenc(cur), fenc(new), success, failure)
	return fdec[T](v), ok
}
