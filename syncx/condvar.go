// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"sync"
	"time"
)

// condWaiter is a node of the CondVar waiter list. Every field is guarded
// by CondVar.mu. A waiter leaves the list exactly once: unlinked by a
// notifier, which then closes ch, or by itself on timeout.
type condWaiter struct {
	prev, next *condWaiter
	queued     bool
	ch         chan struct{}
}

// CondVar is a condition variable used together with a Mutex. The zero
// value is ready to use. A CondVar must not be copied after first use.
//
// Each waiter blocks on its own channel, which a notifier closes. Waiters
// are queued in arrival order; a waiter that times out unlinks itself, so
// the list only ever holds goroutines that are still waiting.
type CondVar struct {
	mu         sync.Mutex // guards the waiter list
	head, tail *condWaiter
	n          int
}

// enqueue registers a waiter. Callers hold their Mutex, so a notifier that
// needs that Mutex to change the condition always finds the waiter.
func (c *CondVar) enqueue() *condWaiter {
	w := &condWaiter{ch: make(chan struct{}), queued: true}
	c.mu.Lock()
	w.prev = c.tail
	if c.tail != nil {
		c.tail.next = w
	} else {
		c.head = w
	}
	c.tail = w
	c.n++
	c.mu.Unlock()
	return w
}

// unlink removes w from the list. c.mu must be held and w must be queued.
func (c *CondVar) unlink(w *condWaiter) {
	if w.prev != nil {
		w.prev.next = w.next
	} else {
		c.head = w.next
	}
	if w.next != nil {
		w.next.prev = w.prev
	} else {
		c.tail = w.prev
	}
	w.prev, w.next = nil, nil
	w.queued = false
	c.n--
}

// Wait atomically releases m, blocks until notified, and reacquires m.
// The caller must hold m.
func (c *CondVar) Wait(m *Mutex) {
	w := c.enqueue()
	m.Unlock()
	<-w.ch
	m.Lock()
}

// WaitTimeout is like Wait but gives up after d. It reports whether the
// waiter was notified; false means the timeout elapsed. m is held again on
// return in both cases.
//
// A zero or negative d returns false at once without releasing m.
func (c *CondVar) WaitTimeout(m *Mutex, d time.Duration) bool {
	if d <= 0 {
		return false
	}
	w := c.enqueue()
	m.Unlock()

	timer := time.NewTimer(d)
	select {
	case <-w.ch:
		timer.Stop()
		m.Lock()
		return true
	case <-timer.C:
	}

	c.mu.Lock()
	if w.queued {
		c.unlink(w)
		c.mu.Unlock()
		m.Lock()
		return false
	}
	c.mu.Unlock()
	// A notifier unlinked this waiter concurrently with the timeout and
	// has closed, or is about to close, its channel.
	<-w.ch
	m.Lock()
	return true
}

// NotifyOne wakes the longest-waiting waiter, if any.
func (c *CondVar) NotifyOne() {
	c.mu.Lock()
	w := c.head
	if w != nil {
		c.unlink(w)
	}
	c.mu.Unlock()
	if w != nil {
		close(w.ch)
	}
}

// NotifyAll wakes every waiter.
func (c *CondVar) NotifyAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.head != nil {
		w := c.head
		c.unlink(w)
		close(w.ch)
	}
}
