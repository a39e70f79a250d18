// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xxh64 implements the xxHash64 non-cryptographic streaming hash.
//
// Output is bit-for-bit identical to the reference xxHash64 algorithm for
// every seed and input, on little- and big-endian hosts alike.
//
// # Usage
//
//	s := xxh64.NewDefault()
//	s.Write([]byte("the quick brown fox "))
//	s.Write([]byte("jumps over the lazy dog"))
//	digest := s.Finish()
//
// Any partition of the input into Write calls yields the same digest as a
// single call. One-shot helpers cover the common case:
//
//	xxh64.Sum64(data)            // DefaultSeed
//	xxh64.Sum64Seed(data, seed)  // caller-supplied seed
//
// # Hashing Values
//
// Types implement [Hashable] to feed their fields into a [Hasher]:
//
//	func (p Point) Hash(h xxh64.Hasher) {
//	    xxh64.WriteUint64(h, uint64(p.X))
//	    xxh64.WriteUint64(h, uint64(p.Y))
//	}
//
//	digest := xxh64.HashOf(Point{1, 2})
//
// # Lifecycle
//
// [State.Finish] consumes the state. Further writes are misuse and are
// only detected in builds with the rtdebug tag. [State] also implements
// hash.Hash64, whose Sum64 does not consume.
package xxh64
