// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package deque provides a growable double-ended queue backed by a ring
// buffer.
//
// A Deque is single-owner. It is not safe for concurrent use without
// external locking.
//
// # Layout
//
// The buffer always keeps one spare slot, so a deque with capacity n owns
// n+1 slots and head == tail means empty, never full:
//
//	len = (tail - head) mod len(buf)
//
// Live elements either occupy buf[head:tail] or, once they wrap past the
// end, buf[head:] followed by buf[:tail]. [Deque.AsSlices] exposes exactly
// those one or two runs; bulk operations copy runs instead of walking
// logical indices.
//
// # Growth
//
// A full deque grows to max(2, 2*cap, cap+additional). Every reallocation
// copies the live runs into a fresh buffer starting at index 0.
//
// # Ownership
//
// Push moves the value in; pop moves it out and zeroes the vacated slot so
// the deque does not retain references. [Deque.Take] transfers the buffer
// to a new Deque and leaves the source empty and non-owning.
package deque

import (
	"iter"

	"code.hybscloud.com/rtcore/internal/debug"
)

// Deque is a double-ended queue of T. The zero value is an empty deque
// that owns no buffer.
type Deque[T any] struct {
	buf  []T
	head int
	tail int
}

// New returns an empty deque without allocating.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// WithCapacity returns an empty deque that holds n elements before its
// first reallocation.
func WithCapacity[T any](n int) *Deque[T] {
	if n < 0 {
		panic("deque: negative capacity")
	}
	d := &Deque[T]{}
	if n > 0 {
		d.buf = make([]T, n+1)
	}
	return d
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	if d.tail >= d.head {
		return d.tail - d.head
	}
	return len(d.buf) - d.head + d.tail
}

// Cap returns the number of elements the deque holds without reallocating.
func (d *Deque[T]) Cap() int {
	if len(d.buf) == 0 {
		return 0
	}
	return len(d.buf) - 1
}

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.head == d.tail
}

func (d *Deque[T]) next(i int) int {
	if i++; i == len(d.buf) {
		return 0
	}
	return i
}

func (d *Deque[T]) prev(i int) int {
	if i == 0 {
		return len(d.buf) - 1
	}
	return i - 1
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	if d.Len() == d.Cap() {
		d.Reserve(1)
	}
	d.buf[d.tail] = v
	d.tail = d.next(d.tail)
}

// PushFront prepends v at the front.
func (d *Deque[T]) PushFront(v T) {
	if d.Len() == d.Cap() {
		d.Reserve(1)
	}
	d.head = d.prev(d.head)
	d.buf[d.head] = v
}

// PopBack removes and returns the back element.
// Returns (zero-value, false) if the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.head == d.tail {
		return zero, false
	}
	d.tail = d.prev(d.tail)
	v := d.buf[d.tail]
	d.buf[d.tail] = zero
	return v, true
}

// PopFront removes and returns the front element.
// Returns (zero-value, false) if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.head == d.tail {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.next(d.head)
	return v, true
}

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.head == d.tail {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	if d.head == d.tail {
		var zero T
		return zero, false
	}
	return d.buf[d.prev(d.tail)], true
}

// At returns the element at logical index i (0 is the front).
// An index outside [0, Len()) is misuse, checked only in debug builds.
func (d *Deque[T]) At(i int) T {
	return *d.slot(i)
}

// Set replaces the element at logical index i.
func (d *Deque[T]) Set(i int, v T) {
	*d.slot(i) = v
}

func (d *Deque[T]) slot(i int) *T {
	debug.Assert(i >= 0 && i < d.Len(), "deque: index out of range")
	j := d.head + i
	if j >= len(d.buf) {
		j -= len(d.buf)
	}
	return &d.buf[j]
}

// Reserve ensures room for at least additional more elements, so that the
// next additional pushes never reallocate.
func (d *Deque[T]) Reserve(additional int) {
	if additional < 0 {
		panic("deque: negative reserve")
	}
	c := d.Cap()
	if d.Len()+additional <= c {
		return
	}
	d.realloc(max(2, 2*c, c+additional))
}

// ShrinkToFit reallocates to exactly Len()+1 slots when the buffer is
// larger. An empty deque releases its buffer.
func (d *Deque[T]) ShrinkToFit() {
	n := d.Len()
	if n == 0 {
		d.Free()
		return
	}
	if len(d.buf) > n+1 {
		d.realloc(n)
	}
}

// realloc moves the live elements into a fresh buffer for capacity c,
// linearized from index 0.
func (d *Deque[T]) realloc(c int) {
	n := d.Len()
	buf := make([]T, c+1)
	a, b := d.AsSlices()
	copy(buf[copy(buf, a):], b)
	d.buf = buf
	d.head = 0
	d.tail = n
}

// AsSlices returns the live elements as one or two contiguous runs in
// iteration order. back is non-empty only when the elements wrap past the
// end of the buffer. The slices alias the deque's storage and may be
// written through; they are invalidated by the next push, reserve or
// shrink.
func (d *Deque[T]) AsSlices() (front, back []T) {
	if d.head <= d.tail {
		return d.buf[d.head:d.tail], nil
	}
	return d.buf[d.head:], d.buf[:d.tail]
}

// ExtendFromSlice appends a copy of s at the back.
func (d *Deque[T]) ExtendFromSlice(s []T) {
	if len(s) == 0 {
		return
	}
	d.Reserve(len(s))
	n := copy(d.buf[d.tail:], s)
	if n < len(s) {
		n += copy(d.buf, s[n:])
	}
	d.tail += len(s)
	if d.tail >= len(d.buf) {
		d.tail -= len(d.buf)
	}
}

// Clone returns a deque holding a shallow copy of the elements, sized to
// fit them exactly.
func (d *Deque[T]) Clone() *Deque[T] {
	n := d.Len()
	if n == 0 {
		return New[T]()
	}
	buf := make([]T, n+1)
	a, b := d.AsSlices()
	copy(buf[copy(buf, a):], b)
	return &Deque[T]{buf: buf, head: 0, tail: n}
}

// Clear removes all elements but keeps the buffer. Use ShrinkToFit or
// Free to release memory.
func (d *Deque[T]) Clear() {
	a, b := d.AsSlices()
	clear(a)
	clear(b)
	d.head = 0
	d.tail = 0
}

// Take moves the contents into a new Deque and leaves d empty and
// non-owning.
func (d *Deque[T]) Take() *Deque[T] {
	out := &Deque[T]{buf: d.buf, head: d.head, tail: d.tail}
	*d = Deque[T]{}
	return out
}

// Free releases the buffer. The deque stays usable and empty.
func (d *Deque[T]) Free() {
	*d = Deque[T]{}
}

// All returns an iterator over (index, element) pairs from front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := d.AsSlices()
		for i, v := range a {
			if !yield(i, v) {
				return
			}
		}
		for i, v := range b {
			if !yield(len(a)+i, v) {
				return
			}
		}
	}
}

// Backward returns an iterator over (index, element) pairs from back to
// front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := d.AsSlices()
		for i := len(b) - 1; i >= 0; i-- {
			if !yield(len(a)+i, b[i]) {
				return
			}
		}
		for i := len(a) - 1; i >= 0; i-- {
			if !yield(i, a[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}
