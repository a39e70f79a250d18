// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// QueuedWaiters returns the number of goroutines on c's waiter list.
func QueuedWaiters(c *CondVar) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
