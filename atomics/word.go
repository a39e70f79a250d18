// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomics

import "code.hybscloud.com/atomix"

// word is a 64-bit cell that every typed wrapper stores its bits in.
//
// Relaxed, Acquire, Release and AcqRel dispatch to the atomix method of
// exactly that strength. atomix has no sequentially consistent form (its
// unsuffixed methods are relaxed for loads and stores, acquire-release for
// read-modify-writes), so SeqCst brackets the acquire-release form with
// full barriers.
type word struct {
	v atomix.Uint64
}

func (w *word) load(o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.LoadRelaxed()
	case Acquire:
		return w.v.LoadAcquire()
	case SeqCst:
		atomix.BarrierAcqRel()
		return w.v.LoadAcquire()
	}
	panic("atomics: invalid load ordering " + o.String())
}

func (w *word) store(v uint64, o Ordering) {
	switch o {
	case Relaxed:
		w.v.StoreRelaxed(v)
	case Release:
		w.v.StoreRelease(v)
	case SeqCst:
		atomix.BarrierAcqRel()
		w.v.StoreRelease(v)
		atomix.BarrierAcqRel()
	default:
		panic("atomics: invalid store ordering " + o.String())
	}
}

func (w *word) cas(old, new uint64, o Ordering) bool {
	switch o {
	case Relaxed:
		return w.v.CompareAndSwapRelaxed(old, new)
	case Acquire:
		return w.v.CompareAndSwapAcquire(old, new)
	case Release:
		return w.v.CompareAndSwapRelease(old, new)
	case AcqRel:
		return w.v.CompareAndSwapAcqRel(old, new)
	case SeqCst:
		atomix.BarrierAcqRel()
		ok := w.v.CompareAndSwapAcqRel(old, new)
		atomix.BarrierAcqRel()
		return ok
	}
	panic("atomics: invalid ordering " + o.String())
}

func (w *word) swap(v uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.SwapRelaxed(v)
	case Acquire:
		return w.v.SwapAcquire(v)
	case Release:
		return w.v.SwapRelease(v)
	case AcqRel:
		return w.v.SwapAcqRel(v)
	case SeqCst:
		atomix.BarrierAcqRel()
		old := w.v.SwapAcqRel(v)
		atomix.BarrierAcqRel()
		return old
	}
	panic("atomics: invalid ordering " + o.String())
}

// add returns the previous bits. atomix Add returns the new value.
func (w *word) add(delta uint64, o Ordering) uint64 {
	var nv uint64
	switch o {
	case Relaxed:
		nv = w.v.AddRelaxed(delta)
	case Acquire:
		nv = w.v.AddAcquire(delta)
	case Release:
		nv = w.v.AddRelease(delta)
	case AcqRel:
		nv = w.v.AddAcqRel(delta)
	case SeqCst:
		atomix.BarrierAcqRel()
		nv = w.v.AddAcqRel(delta)
		atomix.BarrierAcqRel()
	default:
		panic("atomics: invalid ordering " + o.String())
	}
	return nv - delta
}

func (w *word) and(mask uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.AndRelaxed(mask)
	case Acquire:
		return w.v.AndAcquire(mask)
	case Release:
		return w.v.AndRelease(mask)
	case AcqRel:
		return w.v.AndAcqRel(mask)
	case SeqCst:
		atomix.BarrierAcqRel()
		old := w.v.AndAcqRel(mask)
		atomix.BarrierAcqRel()
		return old
	}
	panic("atomics: invalid ordering " + o.String())
}

func (w *word) or(mask uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.OrRelaxed(mask)
	case Acquire:
		return w.v.OrAcquire(mask)
	case Release:
		return w.v.OrRelease(mask)
	case AcqRel:
		return w.v.OrAcqRel(mask)
	case SeqCst:
		atomix.BarrierAcqRel()
		old := w.v.OrAcqRel(mask)
		atomix.BarrierAcqRel()
		return old
	}
	panic("atomics: invalid ordering " + o.String())
}

func (w *word) xor(mask uint64, o Ordering) uint64 {
	switch o {
	case Relaxed:
		return w.v.XorRelaxed(mask)
	case Acquire:
		return w.v.XorAcquire(mask)
	case Release:
		return w.v.XorRelease(mask)
	case AcqRel:
		return w.v.XorAcqRel(mask)
	case SeqCst:
		atomix.BarrierAcqRel()
		old := w.v.XorAcqRel(mask)
		atomix.BarrierAcqRel()
		return old
	}
	panic("atomics: invalid ordering " + o.String())
}

// rmw applies f atomically and returns the previous bits. It serves the
// operations atomix has no instruction for: nand, and add or subtract
// where T is narrower than the cell, whose result must be truncated and
// re-extended to stay canonical. The ordering is carried by the
// successful CAS; the probing loads are relaxed.
func (w *word) rmw(o Ordering, f func(uint64) uint64) uint64 {
	checkRMW(o)
	old := w.v.LoadRelaxed()
	for !w.cas(old, f(old), o) {
		old = w.v.LoadRelaxed()
	}
	return old
}

// compareExchange is the strong form: it fails only when the stored bits
// genuinely differ from cur, and then returns them.
func (w *word) compareExchange(cur, new uint64, success, failure Ordering) (uint64, bool) {
	checkRMW(success)
	checkLoad(failure)
	for {
		if w.cas(cur, new, success) {
			return cur, true
		}
		if old := w.load(failure); old != cur {
			return old, false
		}
	}
}

// compareExchangeWeak makes a single attempt. When another writer changes
// the cell and restores cur between the CAS and the failure load, it
// reports failure while returning cur: a spurious failure.
func (w *word) compareExchangeWeak(cur, new uint64, success, failure Ordering) (uint64, bool) {
	checkRMW(success)
	checkLoad(failure)
	if w.cas(cur, new, success) {
		return cur, true
	}
	return w.load(failure), false
}
