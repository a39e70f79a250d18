// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deque_test

import (
	"math/rand/v2"
	"runtime"
	"slices"
	"testing"
	"weak"

	"code.hybscloud.com/rtcore/deque"
	"code.hybscloud.com/rtcore/internal/debug"
	"code.hybscloud.com/rtcore/xxh64"
)

// contents returns the elements in iteration order via AsSlices.
func contents[T any](d *deque.Deque[T]) []T {
	a, b := d.AsSlices()
	return append(slices.Clone(a), b...)
}

// wrapped returns a deque of capacity 7 whose elements 0..n-1 wrap past
// the end of the buffer.
func wrapped(t *testing.T, n int) *deque.Deque[int] {
	t.Helper()
	d := deque.WithCapacity[int](7)
	for range 5 {
		d.PushBack(-1)
	}
	for range 5 {
		d.PopFront()
	}
	for i := range n {
		d.PushBack(i)
	}
	if d.Cap() != 7 {
		t.Fatalf("wrapped: Cap got %d, want 7", d.Cap())
	}
	return d
}

// =============================================================================
// Basic Operations
// =============================================================================

func TestNewIsEmpty(t *testing.T) {
	d := deque.New[int]()
	if d.Len() != 0 || d.Cap() != 0 || !d.IsEmpty() {
		t.Fatalf("New: got len=%d cap=%d", d.Len(), d.Cap())
	}
	if _, ok := d.PopFront(); ok {
		t.Fatalf("PopFront on empty: got ok")
	}
	if _, ok := d.PopBack(); ok {
		t.Fatalf("PopBack on empty: got ok")
	}
	if _, ok := d.Front(); ok {
		t.Fatalf("Front on empty: got ok")
	}
	if _, ok := d.Back(); ok {
		t.Fatalf("Back on empty: got ok")
	}
	a, b := d.AsSlices()
	if len(a) != 0 || len(b) != 0 {
		t.Fatalf("AsSlices on empty: got %v %v", a, b)
	}

	// Pops on empty never corrupt state.
	d.PushBack(1)
	if v, ok := d.PopFront(); !ok || v != 1 || d.Len() != 0 {
		t.Fatalf("push/pop after empty pops: got (%d, %v) len=%d", v, ok, d.Len())
	}
}

func TestZeroValueUsable(t *testing.T) {
	var d deque.Deque[string]
	d.PushFront("b")
	d.PushFront("a")
	d.PushBack("c")
	if got := contents(&d); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("zero value: got %v", got)
	}
}

func TestFIFOAndLIFO(t *testing.T) {
	d := deque.New[int]()
	for i := range 10 {
		d.PushBack(i)
	}
	for i := range 10 {
		v, ok := d.PopFront()
		if !ok || v != i {
			t.Fatalf("PopFront(%d): got (%d, %v)", i, v, ok)
		}
	}

	for i := range 10 {
		d.PushBack(i)
	}
	for i := 9; i >= 0; i-- {
		v, ok := d.PopBack()
		if !ok || v != i {
			t.Fatalf("PopBack(%d): got (%d, %v)", i, v, ok)
		}
	}
}

func TestFrontBackAtSet(t *testing.T) {
	d := wrapped(t, 6)
	if v, _ := d.Front(); v != 0 {
		t.Fatalf("Front: got %d, want 0", v)
	}
	if v, _ := d.Back(); v != 5 {
		t.Fatalf("Back: got %d, want 5", v)
	}
	for i := range 6 {
		if got := d.At(i); got != i {
			t.Fatalf("At(%d): got %d", i, got)
		}
	}
	d.Set(4, 40)
	if got := d.At(4); got != 40 {
		t.Fatalf("Set(4): got %d, want 40", got)
	}
}

func TestAtOutOfRangeDebug(t *testing.T) {
	if !debug.Enabled {
		t.Skip("skip: misuse checks require -tags rtdebug")
	}
	d := deque.WithCapacity[int](4)
	d.PushBack(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("At(1) on len 1: expected panic")
		}
	}()
	d.At(1)
}

// =============================================================================
// Reference Model
// =============================================================================

// TestRandomOpsMatchReference drives interleaved pushes and pops against a
// slice-backed reference deque.
func TestRandomOpsMatchReference(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for round := range 50 {
		d := deque.New[int]()
		var ref []int
		pushes, pops := 0, 0
		for op := range 2000 {
			switch r.IntN(6) {
			case 0, 1:
				d.PushBack(op)
				ref = append(ref, op)
				pushes++
			case 2:
				d.PushFront(op)
				ref = slices.Insert(ref, 0, op)
				pushes++
			case 3:
				v, ok := d.PopFront()
				if ok != (len(ref) > 0) {
					t.Fatalf("round %d op %d: PopFront ok=%v, ref len %d", round, op, ok, len(ref))
				}
				if ok {
					if v != ref[0] {
						t.Fatalf("round %d op %d: PopFront got %d, want %d", round, op, v, ref[0])
					}
					ref = ref[1:]
					pops++
				}
			case 4:
				v, ok := d.PopBack()
				if ok != (len(ref) > 0) {
					t.Fatalf("round %d op %d: PopBack ok=%v, ref len %d", round, op, ok, len(ref))
				}
				if ok {
					if v != ref[len(ref)-1] {
						t.Fatalf("round %d op %d: PopBack got %d, want %d", round, op, v, ref[len(ref)-1])
					}
					ref = ref[:len(ref)-1]
					pops++
				}
			case 5:
				if r.IntN(10) == 0 {
					d.ShrinkToFit()
				}
			}
			if d.Len() != pushes-pops || d.Len() != len(ref) {
				t.Fatalf("round %d op %d: Len %d, pushes-pops %d, ref %d", round, op, d.Len(), pushes-pops, len(ref))
			}
		}
		if got := contents(d); !slices.Equal(got, ref) {
			t.Fatalf("round %d: contents %v, want %v", round, got, ref)
		}
	}
}

// =============================================================================
// Capacity
// =============================================================================

func TestWithCapacitySpareSlot(t *testing.T) {
	d := deque.WithCapacity[int](4)
	if d.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", d.Cap())
	}
	for i := range 4 {
		d.PushBack(i)
	}
	if d.Cap() != 4 {
		t.Fatalf("Cap after 4 pushes: got %d, want 4", d.Cap())
	}
	d.PushBack(4)
	if d.Cap() != 8 {
		t.Fatalf("Cap after growth: got %d, want 8", d.Cap())
	}
}

func TestGrowthPolicy(t *testing.T) {
	d := deque.New[int]()
	d.PushBack(1)
	if d.Cap() != 2 {
		t.Fatalf("first growth: got %d, want 2", d.Cap())
	}
	d.PushBack(2)
	d.PushBack(3)
	if d.Cap() != 4 {
		t.Fatalf("doubling: got %d, want 4", d.Cap())
	}
	d.Reserve(100)
	if d.Cap() != 104 {
		t.Fatalf("Reserve(100) at cap 4: got %d, want 104", d.Cap())
	}
	d.Reserve(10)
	if d.Cap() != 104 {
		t.Fatalf("Reserve within cap: got %d, want 104", d.Cap())
	}
}

func TestReserveThenPushesNeverReallocate(t *testing.T) {
	for _, k := range []int{1, 2, 7, 64, 1000} {
		d := wrapped(t, 3)
		d.Reserve(k)
		c := d.Cap()
		a, _ := d.AsSlices()
		for i := range k {
			if i%2 == 0 {
				d.PushBack(i)
			} else {
				d.PushFront(i)
			}
		}
		if d.Cap() != c {
			t.Fatalf("k=%d: Cap changed %d -> %d", k, c, d.Cap())
		}
		// The view taken before the pushes still aliases the live buffer.
		a[0] = -7
		if got := d.At(k / 2); got != -7 {
			t.Fatalf("k=%d: buffer moved (At(%d) = %d)", k, k/2, got)
		}
	}
}

func TestShrinkToFit(t *testing.T) {
	d := wrapped(t, 6)
	d.Reserve(100)
	d.ShrinkToFit()
	if d.Cap() != 6 {
		t.Fatalf("ShrinkToFit: Cap got %d, want 6", d.Cap())
	}
	if got := contents(d); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("ShrinkToFit: contents %v", got)
	}
	a, b := d.AsSlices()
	if len(a) != 6 || len(b) != 0 {
		t.Fatalf("ShrinkToFit: not linearized (%d, %d)", len(a), len(b))
	}

	d.Clear()
	d.ShrinkToFit()
	if d.Cap() != 0 {
		t.Fatalf("ShrinkToFit on empty: Cap got %d, want 0", d.Cap())
	}
}

func TestClearKeepsBuffer(t *testing.T) {
	d := wrapped(t, 5)
	d.Clear()
	if d.Len() != 0 || d.Cap() != 7 {
		t.Fatalf("Clear: len=%d cap=%d, want 0/7", d.Len(), d.Cap())
	}
	d.PushBack(9)
	if v, _ := d.Front(); v != 9 {
		t.Fatalf("push after Clear: got %d", v)
	}
}

type payload struct {
	_ [64]byte
}

func TestPopReleasesReference(t *testing.T) {
	d := deque.WithCapacity[*payload](4)
	push := func() weak.Pointer[payload] {
		p := &payload{}
		d.PushBack(p)
		return weak.Make(p)
	}
	front, back := push(), push()
	func() {
		d.PopFront()
		d.PopBack()
	}()

	for range 10 {
		runtime.GC()
		if front.Value() == nil && back.Value() == nil {
			break
		}
	}
	if front.Value() != nil || back.Value() != nil {
		t.Fatalf("popped slots still reference their values")
	}
	runtime.KeepAlive(d)
}

// =============================================================================
// Bulk Operations
// =============================================================================

func TestAsSlicesWrap(t *testing.T) {
	d := wrapped(t, 6)
	a, b := d.AsSlices()
	if len(a) == 0 || len(b) == 0 {
		t.Fatalf("AsSlices: expected two runs, got %d and %d", len(a), len(b))
	}
	var iterated []int
	for v := range d.Values() {
		iterated = append(iterated, v)
	}
	if got := contents(d); !slices.Equal(got, iterated) {
		t.Fatalf("AsSlices %v != iteration %v", got, iterated)
	}

	// Mutation through the views is visible.
	b[0] = 100
	if got := d.At(len(a)); got != 100 {
		t.Fatalf("write through view: got %d", got)
	}
}

func TestExtendFromSlice(t *testing.T) {
	d := wrapped(t, 2) // head near the end of the buffer
	d.ExtendFromSlice([]int{2, 3, 4})
	if got := contents(d); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("ExtendFromSlice wrap: got %v", got)
	}
	if d.Cap() != 7 {
		t.Fatalf("ExtendFromSlice within cap: Cap got %d", d.Cap())
	}

	d.ExtendFromSlice(nil)
	big := make([]int, 50)
	for i := range big {
		big[i] = 5 + i
	}
	d.ExtendFromSlice(big)
	if d.Len() != 55 {
		t.Fatalf("ExtendFromSlice growth: Len got %d", d.Len())
	}
	for i := range 55 {
		if d.At(i) != i {
			t.Fatalf("At(%d): got %d", i, d.At(i))
		}
	}

	e := deque.New[int]()
	e.ExtendFromSlice([]int{1, 2})
	if got := contents(e); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("ExtendFromSlice on new: got %v", got)
	}
}

func TestClone(t *testing.T) {
	d := wrapped(t, 6)
	c := d.Clone()
	if c.Cap() != 6 {
		t.Fatalf("Clone: Cap got %d, want 6", c.Cap())
	}
	if !slices.Equal(contents(c), contents(d)) {
		t.Fatalf("Clone: contents differ")
	}
	c.Set(0, 99)
	if d.At(0) != 0 {
		t.Fatalf("Clone: shares storage with source")
	}
	if e := deque.New[int]().Clone(); e.Len() != 0 || e.Cap() != 0 {
		t.Fatalf("Clone of empty: len=%d cap=%d", e.Len(), e.Cap())
	}
}

func TestTakeLeavesSourceEmpty(t *testing.T) {
	d := wrapped(t, 4)
	moved := d.Take()
	if d.Len() != 0 || d.Cap() != 0 {
		t.Fatalf("Take: source len=%d cap=%d", d.Len(), d.Cap())
	}
	if got := contents(moved); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("Take: moved contents %v", got)
	}
	// Source no longer aliases the buffer.
	d.PushBack(42)
	if moved.At(0) != 0 || moved.Len() != 4 {
		t.Fatalf("Take: source aliased moved buffer")
	}
}

func TestFree(t *testing.T) {
	d := wrapped(t, 4)
	d.Free()
	if d.Len() != 0 || d.Cap() != 0 {
		t.Fatalf("Free: len=%d cap=%d", d.Len(), d.Cap())
	}
	d.PushBack(1)
	if d.Len() != 1 {
		t.Fatalf("push after Free: Len %d", d.Len())
	}
}

func TestIterators(t *testing.T) {
	d := wrapped(t, 6)
	var idx, vals []int
	for i, v := range d.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if !slices.Equal(idx, []int{0, 1, 2, 3, 4, 5}) || !slices.Equal(vals, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("All: idx %v vals %v", idx, vals)
	}

	idx, vals = nil, nil
	for i, v := range d.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if !slices.Equal(idx, []int{5, 4, 3, 2, 1, 0}) || !slices.Equal(vals, []int{5, 4, 3, 2, 1, 0}) {
		t.Fatalf("Backward: idx %v vals %v", idx, vals)
	}

	n := 0
	for range d.Values() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("Values early break: got %d", n)
	}
}

// TestHashAcrossWrap hashes the two runs of a wrapped byte deque and
// compares with hashing its linearized contents.
func TestHashAcrossWrap(t *testing.T) {
	d := deque.WithCapacity[byte](40)
	for range 30 {
		d.PushBack(0)
	}
	for range 30 {
		d.PopFront()
	}
	d.ExtendFromSlice([]byte("the quick brown fox jumps over the lazy dog"[:40]))

	a, b := d.AsSlices()
	if len(b) == 0 {
		t.Fatalf("expected wrapped layout")
	}
	s := xxh64.NewDefault()
	s.Write(a)
	s.Write(b)
	if got, want := s.Finish(), xxh64.Sum64(contents(d)); got != want {
		t.Fatalf("hash across wrap: got %#x, want %#x", got, want)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkPushPopBack(b *testing.B) {
	d := deque.WithCapacity[int](1024)
	for i := range b.N {
		d.PushBack(i)
		d.PopBack()
	}
}

func BenchmarkPushBackPopFront(b *testing.B) {
	d := deque.New[int]()
	for i := range b.N {
		d.PushBack(i)
		if d.Len() > 512 {
			d.PopFront()
		}
	}
}
