// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomics provides typed atomic values with an explicit memory
// ordering argument on every operation.
//
// The orderings follow the C11 memory model and carry the C11 numeric
// values:
//
//	Relaxed = 0, Acquire = 2, Release = 3, AcqRel = 4, SeqCst = 5
//
// Types:
//
//	Int[T]    - any integer type; Load, Store, Swap, CompareExchange,
//	            CompareExchangeWeak, FetchAdd/Sub/And/Or/Xor/Nand
//	Bool      - Load, Store, Swap, CompareExchange, FetchAnd/Or/Xor/Nand
//	Float[T]  - float32/float64; Load, Store, Swap, CompareExchange
//
// # Orderings
//
// Each ordering maps onto the [code.hybscloud.com/atomix] primitive of the
// same strength (LoadAcquire, StoreRelease, CompareAndSwapAcqRel, ...).
// Orderings that C11 forbids for an operation panic:
//
//	Load:                 Release, AcqRel
//	Store:                Acquire, AcqRel
//	CompareExchange fail: Release, AcqRel
//
// atomix has no sequentially consistent methods, so SeqCst is the
// acquire-release access between two full barriers.
//
// Swap and the bitwise operations are single atomix instructions for every
// width, as are FetchAdd and FetchSub on 64-bit types. Narrower FetchAdd
// and FetchSub, and every FetchNand, are compare-and-swap loops whose
// successful CAS carries the requested ordering.
//
// # Fences
//
// Fence issues atomix.BarrierAcquire, BarrierRelease or BarrierAcqRel;
// SeqCst uses the full barrier and Relaxed is a no-op.
//
// # Example
//
//	var ready atomics.Bool
//	var data int
//
//	// Producer
//	data = 42
//	ready.Store(true, atomics.Release)
//
//	// Consumer
//	for !ready.Load(atomics.Acquire) {
//	}
//	_ = data // observes 42
//
// # Weak CompareExchange
//
// CompareExchangeWeak makes one attempt and may report failure although
// the value it returns equals the expected one. CompareExchange retries
// internally until the mismatch is real.
package atomics
