// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xxh64

import (
	"encoding/binary"
	"math/bits"

	"code.hybscloud.com/rtcore/internal/debug"
)

const (
	prime1 uint64 = 0x9E3779B185EBCA87
	prime2 uint64 = 0xC2B2AE3D27D4EB4F
	prime3 uint64 = 0x165667B19E3779F9
	prime4 uint64 = 0x85EBCA77C2B2AE63
	prime5 uint64 = 0x27D4EB2F165667C5
)

// DefaultSeed is the seed used by NewDefault, Sum64 and HashOf.
const DefaultSeed uint64 = 0xdeadb33f

const (
	// Size is the digest size in bytes.
	Size = 8
	// BlockSize is the stripe size consumed by the four lanes.
	BlockSize = 32
)

// State is a streaming xxHash64 accumulator.
//
// Between Write calls at most BlockSize-1 bytes are buffered; the four
// lanes only ever absorb full 32-byte stripes. A State is single-owner and
// must not be shared between goroutines without external locking.
//
// Finish consumes the state. Writing to, or finishing, a finished state is
// misuse: it is checked only in debug builds.
type State struct {
	v1, v2, v3, v4 uint64
	seed           uint64
	total          uint64
	mem            [BlockSize]byte
	n              int // bytes buffered in mem
	done           bool
}

// New returns a State seeded with seed.
func New(seed uint64) *State {
	s := &State{}
	s.init(seed)
	return s
}

// NewDefault returns a State seeded with DefaultSeed.
func NewDefault() *State {
	return New(DefaultSeed)
}

func (s *State) init(seed uint64) {
	s.seed = seed
	s.v1 = seed + prime1 + prime2
	s.v2 = seed + prime2
	s.v3 = seed
	s.v4 = seed - prime1
	s.total = 0
	s.n = 0
	s.done = false
}

// Reset restores the State to its freshly seeded condition.
func (s *State) Reset() {
	s.init(s.seed)
}

// Size returns the digest size in bytes.
func (s *State) Size() int { return Size }

// BlockSize returns the stripe size in bytes.
func (s *State) BlockSize() int { return BlockSize }

// Write absorbs p. It always returns len(p), nil.
//
// Hashing a byte sequence in one call or split across any number of calls
// yields the same digest.
func (s *State) Write(p []byte) (int, error) {
	debug.Assert(!s.done, "xxh64: write after Finish")
	n := len(p)
	s.total += uint64(n)

	if s.n+n < BlockSize {
		s.n += copy(s.mem[s.n:], p)
		return n, nil
	}

	if s.n > 0 {
		c := copy(s.mem[s.n:], p)
		s.stripe(s.mem[:])
		p = p[c:]
		s.n = 0
	}

	for len(p) >= BlockSize {
		s.stripe(p[:BlockSize])
		p = p[BlockSize:]
	}

	s.n = copy(s.mem[:], p)
	return n, nil
}

func (s *State) stripe(b []byte) {
	_ = b[31]
	s.v1 = round(s.v1, binary.LittleEndian.Uint64(b[0:8]))
	s.v2 = round(s.v2, binary.LittleEndian.Uint64(b[8:16]))
	s.v3 = round(s.v3, binary.LittleEndian.Uint64(b[16:24]))
	s.v4 = round(s.v4, binary.LittleEndian.Uint64(b[24:32]))
}

// Finish folds the buffered tail and lane state into the digest and
// consumes the State.
func (s *State) Finish() uint64 {
	debug.Assert(!s.done, "xxh64: Finish on a finished state")
	h := s.digest()
	s.done = true
	return h
}

// Sum64 returns the digest of the bytes written so far without consuming
// the State. It exists for hash.Hash64; prefer Finish.
func (s *State) Sum64() uint64 {
	return s.digest()
}

// Sum appends the big-endian digest to b.
func (s *State) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, s.digest())
}

func (s *State) digest() uint64 {
	var h uint64
	if s.total >= BlockSize {
		h = bits.RotateLeft64(s.v1, 1) + bits.RotateLeft64(s.v2, 7) +
			bits.RotateLeft64(s.v3, 12) + bits.RotateLeft64(s.v4, 18)
		h = mergeRound(h, s.v1)
		h = mergeRound(h, s.v2)
		h = mergeRound(h, s.v3)
		h = mergeRound(h, s.v4)
	} else {
		h = s.seed + prime5
	}
	h += s.total

	p := s.mem[:s.n]
	for len(p) >= 8 {
		k := round(0, binary.LittleEndian.Uint64(p))
		h ^= k
		h = bits.RotateLeft64(h, 27)*prime1 + prime4
		p = p[8:]
	}
	if len(p) >= 4 {
		h ^= uint64(binary.LittleEndian.Uint32(p)) * prime1
		h = bits.RotateLeft64(h, 23)*prime2 + prime3
		p = p[4:]
	}
	for _, c := range p {
		h ^= uint64(c) * prime5
		h = bits.RotateLeft64(h, 11) * prime1
	}

	return avalanche(h)
}

func round(acc, input uint64) uint64 {
	acc += input * prime2
	acc = bits.RotateLeft64(acc, 31)
	return acc * prime1
}

func mergeRound(acc, v uint64) uint64 {
	acc ^= round(0, v)
	return acc*prime1 + prime4
}

func avalanche(h uint64) uint64 {
	h ^= h >> 33
	h *= prime2
	h ^= h >> 29
	h *= prime3
	h ^= h >> 32
	return h
}

// Sum64 returns the digest of b under DefaultSeed.
func Sum64(b []byte) uint64 {
	return Sum64Seed(b, DefaultSeed)
}

// Sum64Seed returns the digest of b under seed.
func Sum64Seed(b []byte, seed uint64) uint64 {
	var s State
	s.init(seed)
	s.Write(b)
	return s.digest()
}
