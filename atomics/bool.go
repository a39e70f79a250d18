// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomics

// Bool is an atomic boolean. The zero value is false.
type Bool struct {
	v Int[uint8]
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Load returns the value.
func (b *Bool) Load(o Ordering) bool {
	return b.v.Load(o) != 0
}

// Store sets the value.
func (b *Bool) Store(v bool, o Ordering) {
	b.v.Store(b2u(v), o)
}

// Swap sets the value and returns the previous one.
func (b *Bool) Swap(v bool, o Ordering) bool {
	return b.v.Swap(b2u(v), o) != 0
}

// CompareExchange stores new if the value equals cur (strong).
func (b *Bool) CompareExchange(cur, new bool, success, failure Ordering) (bool, bool) {
	v, ok := b.v.CompareExchange(b2u(cur), b2u(new), success, failure)
	return v != 0, ok
}

// CompareExchangeWeak stores new if the value equals cur and may fail
// spuriously.
func (b *Bool) CompareExchangeWeak(cur, new bool, success, failure Ordering) (bool, bool) {
	v, ok := b.v.CompareExchangeWeak(b2u(cur), b2u(new), success, failure)
	return v != 0, ok
}

// FetchAnd stores old && v and returns old.
func (b *Bool) FetchAnd(v bool, o Ordering) bool {
	return b.v.FetchAnd(b2u(v), o) != 0
}

// FetchOr stores old || v and returns old.
func (b *Bool) FetchOr(v bool, o Ordering) bool {
	return b.v.FetchOr(b2u(v), o) != 0
}

// FetchXor stores old != v and returns old.
func (b *Bool) FetchXor(v bool, o Ordering) bool {
	return b.v.FetchXor(b2u(v), o) != 0
}

// FetchNand stores !(old && v) and returns old.
func (b *Bool) FetchNand(v bool, o Ordering) bool {
	return b.v.w.rmw(o, func(old uint64) uint64 {
		return uint64(b2u(!(old != 0 && v)))
	}) != 0
}
