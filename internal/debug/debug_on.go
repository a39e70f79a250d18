// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build rtdebug

package debug

// Enabled is true when built with the rtdebug tag.
const Enabled = true
