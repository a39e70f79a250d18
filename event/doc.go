// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package event provides a lock-free multi-waiter Event and a
// single-value Oneshot channel built on it.
//
// # Event
//
// An Event is RESET, SET, or WAITING with a list of blocked goroutines. All
// three live in one atomically swapped word:
//
//	New()         → RESET
//	NewSet()      → SET
//	Wait()        RESET/WAITING: push a waiter by CAS and block
//	              SET: return at once
//	Set()         swap to SET; wake every detached waiter
//	Reset()       SET → RESET; otherwise no-op
//
// Set never takes a lock or makes a system call when nobody is waiting.
// Waiters spin briefly with [code.hybscloud.com/spin] before parking.
//
// A waiter that finds the event SET synchronizes through the state word
// (acquire-release swap in Set, acquire load in Wait). A queued waiter
// synchronizes through its signaled flag: a Release store by Set paired
// with an Acquire load by Wait. Either way, everything written before Set
// is visible after Wait.
//
// # Oneshot
//
//	ch := event.NewOneshot[Result]()
//
//	go func() { ch.Send(compute()) }()
//
//	r := ch.Recv()             // blocks
//	r, err := ch.TryRecv()     // ErrWouldBlock until sent
//
// FromValue builds a Oneshot that is complete from the start.
//
// # Cancellation
//
// Wait and Recv have no timeout or cancellation; only Set (or Send) ends
// them.
package event
