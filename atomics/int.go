// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomics

import "unsafe"

// Integer is the set of integer types Int can wrap.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int is an atomic integer of type T. The zero value is 0.
//
// Arithmetic wraps around in T's width. Every method takes the ordering
// to apply; it is never strengthened or weakened.
//
// An Int must not be copied after first use.
type Int[T Integer] struct {
	w word
}

// NewInt returns an Int holding v.
func NewInt[T Integer](v T) *Int[T] {
	a := &Int[T]{}
	a.w.v.StoreRelaxed(uint64(v))
	return a
}

// Load returns the value. o must be Relaxed, Acquire or SeqCst.
func (a *Int[T]) Load(o Ordering) T {
	return T(a.w.load(o))
}

// Store sets the value. o must be Relaxed, Release or SeqCst.
func (a *Int[T]) Store(v T, o Ordering) {
	a.w.store(uint64(v), o)
}

// Swap sets the value and returns the previous one.
func (a *Int[T]) Swap(v T, o Ordering) T {
	return T(a.w.swap(uint64(v), o))
}

// CompareExchange stores new if the value equals cur. It returns the
// value observed and whether the store happened. It never fails when the
// value equals cur.
//
// failure applies to the load when the comparison fails and must be
// Relaxed, Acquire or SeqCst.
func (a *Int[T]) CompareExchange(cur, new T, success, failure Ordering) (T, bool) {
	v, ok := a.w.compareExchange(uint64(cur), uint64(new), success, failure)
	return T(v), ok
}

// CompareExchangeWeak is like CompareExchange but may fail spuriously,
// reporting failure while returning cur. Callers retry in a loop.
func (a *Int[T]) CompareExchangeWeak(cur, new T, success, failure Ordering) (T, bool) {
	v, ok := a.w.compareExchangeWeak(uint64(cur), uint64(new), success, failure)
	return T(v), ok
}

// wide reports whether T fills the 64-bit cell, so that cell arithmetic
// wraps exactly as T does.
func wide[T Integer]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 8
}

// FetchAdd adds v and returns the previous value.
func (a *Int[T]) FetchAdd(v T, o Ordering) T {
	if wide[T]() {
		return T(a.w.add(uint64(v), o))
	}
	return T(a.w.rmw(o, func(old uint64) uint64 { return uint64(T(old) + v) }))
}

// FetchSub subtracts v and returns the previous value.
func (a *Int[T]) FetchSub(v T, o Ordering) T {
	if wide[T]() {
		return T(a.w.add(-uint64(v), o))
	}
	return T(a.w.rmw(o, func(old uint64) uint64 { return uint64(T(old) - v) }))
}

// FetchAnd applies bitwise and with v and returns the previous value.
//
// Bitwise operations keep the sign-extended encoding canonical, so they
// run on the whole cell for every width.
func (a *Int[T]) FetchAnd(v T, o Ordering) T {
	return T(a.w.and(uint64(v), o))
}

// FetchOr applies bitwise or with v and returns the previous value.
func (a *Int[T]) FetchOr(v T, o Ordering) T {
	return T(a.w.or(uint64(v), o))
}

// FetchXor applies bitwise xor with v and returns the previous value.
func (a *Int[T]) FetchXor(v T, o Ordering) T {
	return T(a.w.xor(uint64(v), o))
}

// FetchNand stores ^(old & v) and returns the previous value.
func (a *Int[T]) FetchNand(v T, o Ordering) T {
	return T(a.w.rmw(o, func(old uint64) uint64 { return uint64(^(T(old) & v)) }))
}
