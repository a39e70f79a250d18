// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package rtcore

// RaceEnabled is true when the race detector is active.
// Used by tests to skip stress tests whose plain data is published through
// atomix orderings, which the race detector cannot observe.
const RaceEnabled = true
