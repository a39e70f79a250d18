// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"time"

	"code.hybscloud.com/rtcore"
	"code.hybscloud.com/rtcore/deque"
)

// Queue is a bounded FIFO queue safe for any number of producer and
// consumer goroutines.
//
// Enqueue and Dequeue are the non-blocking forms and return
// [rtcore.ErrWouldBlock]; Send, Recv and RecvTimeout block. Storage is a
// [deque.Deque] reserved up front, so the queue never reallocates.
type Queue[T any] struct {
	mu       Mutex
	notEmpty CondVar
	notFull  CondVar
	buf      *deque.Deque[T]
	capacity int
}

var _ rtcore.Queue[int] = (*Queue[int])(nil)

// NewQueue creates a queue holding at most capacity elements.
// Panics if capacity < 1.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic("syncx: capacity must be >= 1")
	}
	return &Queue[T]{
		buf:      deque.WithCapacity[T](capacity),
		capacity: capacity,
	}
}

// Enqueue adds a copy of *elem to the back of the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *Queue[T]) Enqueue(elem *T) error {
	q.mu.Lock()
	if q.buf.Len() == q.capacity {
		q.mu.Unlock()
		return rtcore.ErrWouldBlock
	}
	q.buf.PushBack(*elem)
	q.mu.Unlock()
	q.notEmpty.NotifyOne()
	return nil
}

// Dequeue removes and returns the front element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	v, ok := q.buf.PopFront()
	q.mu.Unlock()
	if !ok {
		return v, rtcore.ErrWouldBlock
	}
	q.notFull.NotifyOne()
	return v, nil
}

// Send adds v to the back of the queue, blocking while the queue is full.
func (q *Queue[T]) Send(v T) {
	q.mu.Lock()
	for q.buf.Len() == q.capacity {
		q.notFull.Wait(&q.mu)
	}
	q.buf.PushBack(v)
	q.mu.Unlock()
	q.notEmpty.NotifyOne()
}

// Recv removes and returns the front element, blocking while the queue is
// empty.
func (q *Queue[T]) Recv() T {
	q.mu.Lock()
	for q.buf.IsEmpty() {
		q.notEmpty.Wait(&q.mu)
	}
	v, _ := q.buf.PopFront()
	q.mu.Unlock()
	q.notFull.NotifyOne()
	return v
}

// RecvTimeout is like Recv but gives up after d.
// Returns (zero-value, ErrWouldBlock) if the queue stayed empty.
func (q *Queue[T]) RecvTimeout(d time.Duration) (T, error) {
	deadline := time.Now().Add(d)
	q.mu.Lock()
	for q.buf.IsEmpty() {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			q.mu.Unlock()
			var zero T
			return zero, rtcore.ErrWouldBlock
		}
		q.notEmpty.WaitTimeout(&q.mu, remaining)
	}
	v, _ := q.buf.PopFront()
	q.mu.Unlock()
	q.notFull.NotifyOne()
	return v, nil
}

// Len returns the number of queued elements at the moment of the call.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Len()
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return q.capacity
}
