// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package syncx provides blocking synchronization primitives: Mutex,
// RwLock and CondVar, and a bounded blocking Queue built from them.
//
// # Blocking
//
//	Mutex.Lock, RwLock.ReadLock, RwLock.WriteLock  block until acquired
//	CondVar.Wait, CondVar.WaitTimeout               block until notified
//	Queue.Send, Queue.Recv, Queue.RecvTimeout       block on full/empty
//
// The Try variants and Queue.Enqueue/Dequeue never block. They report
// "would block" as false or [rtcore.ErrWouldBlock], which is a normal
// outcome, not a failure.
//
// # Fatal Errors
//
// Misusing a lock (unlocking a mutex that is not locked, releasing a read
// lock that is not held) is a programmer error. The Go runtime terminates
// the process with a diagnostic; nothing is returned to the caller.
//
// # Condition Variables
//
// Wait releases the mutex while blocked and reacquires it before
// returning. Waits may return without the awaited condition holding, so
// callers re-check in a loop:
//
//	mu.Lock()
//	for !ready {
//	    cv.Wait(&mu)
//	}
//	mu.Unlock()
//
// # Fairness
//
// RwLock fairness is that of [sync.RWMutex]: a blocked writer keeps new
// readers out. CondVar wakes waiters in arrival order.
package syncx
