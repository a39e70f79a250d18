// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rtcore holds the shared vocabulary of a small set of runtime
// core primitives: hashing, a ring-buffer deque, ordered atomics, blocking
// locks, and one-shot signalling.
//
// The primitives live in subpackages:
//
//   - xxh64: streaming xxHash64 and value hashing
//   - deque: growable ring-buffer double-ended queue
//   - atomics: typed atomics with explicit C11 memory orderings
//   - syncx: Mutex, RwLock, CondVar and a bounded blocking Queue
//   - event: manual-reset Event and single-value Oneshot
//
// This package itself defines the error classifiers and the Queue,
// Producer, Consumer and Receiver interfaces the subpackages implement.
//
// # Quick Start
//
//	h := xxh64.NewDefault()
//	h.Write(payload)
//	sum := h.Finish()
//
//	d := deque.New[int]()
//	d.PushBack(1)
//	d.PushFront(0)
//
//	var n atomics.Int[uint32]
//	n.FetchAdd(1, atomics.AcqRel)
//
//	ch := event.NewOneshot[Result]()
//	go func() { ch.Send(compute()) }()
//	r := ch.Recv()
//
// # Memory Orderings
//
// atomics.Ordering uses the C11 numeric values (Relaxed=0, Acquire=2,
// Release=3, AcqRel=4, SeqCst=5). Each ordering maps onto the matching
// atomix primitive, so a Relaxed counter costs what a relaxed counter
// costs on the host.
//
// Constraints for load and store orderings:
//
//	Load:  Relaxed, Acquire, SeqCst
//	Store: Relaxed, Release, SeqCst
//	CAS failure: Relaxed, Acquire, SeqCst
//
// Any other combination panics.
//
// # Error Handling
//
// Non-blocking operations return [ErrWouldBlock] when they cannot proceed:
//
//	v, err := ch.TryRecv()
//	if rtcore.IsWouldBlock(err) {
//	    // not sent yet
//	}
//
//	err := q.Enqueue(&item)
//	if rtcore.IsWouldBlock(err) {
//	    // queue full, apply backpressure
//	}
//
// Single-owner structures report absence with a (T, bool) pair instead.
// Misuse (negative capacity, invalid ordering) panics with a
// package-prefixed message.
//
// # Debug Builds
//
// Checks for undefined-behavior class misuse (writing to a finished hash
// state, out-of-range deque indices, sending a Oneshot twice) are compiled
// in only with the rtdebug build tag:
//
//	go test -tags rtdebug ./...
//
// # Race Detection
//
// Go's race detector does not observe happens-before edges established
// through atomix orderings. Stress tests that publish plain data through
// such edges are skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses:
//   - [code.hybscloud.com/atomix] for atomic primitives with explicit memory ordering
//   - [code.hybscloud.com/iox] for semantic errors (ErrWouldBlock) and backoff
//   - [code.hybscloud.com/spin] for CPU pause instructions in spin phases
package rtcore
