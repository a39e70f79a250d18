// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "sync"

// Mutex is a non-reentrant mutual exclusion lock. The zero value is
// unlocked. A Mutex must not be copied after first use.
type Mutex struct {
	mu sync.Mutex
}

var _ sync.Locker = (*Mutex)(nil)

// Lock blocks until the mutex is acquired. Locking a mutex already held by
// the caller deadlocks.
func (m *Mutex) Lock() {
	m.mu.Lock()
}

// TryLock acquires the mutex if it is free and reports whether it did.
// Never blocks.
func (m *Mutex) TryLock() bool {
	return m.mu.TryLock()
}

// Unlock releases the mutex. Unlocking an unlocked mutex is fatal.
func (m *Mutex) Unlock() {
	m.mu.Unlock()
}

// RwLock is a reader/writer lock. The zero value is unlocked. An RwLock
// must not be copied after first use.
type RwLock struct {
	mu sync.RWMutex
}

// ReadLock blocks until a shared lock is acquired.
func (l *RwLock) ReadLock() {
	l.mu.RLock()
}

// TryReadLock acquires a shared lock if no writer holds or awaits the
// lock and reports whether it did.
func (l *RwLock) TryReadLock() bool {
	return l.mu.TryRLock()
}

// ReadUnlock releases a shared lock.
func (l *RwLock) ReadUnlock() {
	l.mu.RUnlock()
}

// WriteLock blocks until the exclusive lock is acquired.
func (l *RwLock) WriteLock() {
	l.mu.Lock()
}

// TryWriteLock acquires the exclusive lock if the lock is free and reports
// whether it did.
func (l *RwLock) TryWriteLock() bool {
	return l.mu.TryLock()
}

// WriteUnlock releases the exclusive lock.
func (l *RwLock) WriteUnlock() {
	l.mu.Unlock()
}

// RLocker returns a sync.Locker whose Lock and Unlock take and release the
// shared lock.
func (l *RwLock) RLocker() sync.Locker {
	return l.mu.RLocker()
}
