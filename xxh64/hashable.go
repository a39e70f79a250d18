// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xxh64

import (
	"encoding/binary"
	"hash"
	"io"
)

var _ hash.Hash64 = (*State)(nil)

// Hasher is the sink a Hashable value writes itself into.
//
// *State satisfies Hasher, as does any hash.Hash64.
type Hasher interface {
	io.Writer
	Sum64() uint64
}

// Hashable is implemented by values that know how to feed themselves to a
// Hasher. Implementations write each field explicitly (see WriteUint64 and
// friends), so the digest never depends on in-memory layout or padding.
type Hashable interface {
	Hash(h Hasher)
}

// HashOf hashes v with a DefaultSeed State.
func HashOf[T Hashable](v T) uint64 {
	var s State
	s.init(DefaultSeed)
	v.Hash(&s)
	return s.Finish()
}

// HashSeq hashes each element of vs in order into h.
func HashSeq[T Hashable](h Hasher, vs ...T) {
	for i := range vs {
		vs[i].Hash(h)
	}
}

// WriteUint8 writes v as one byte.
func WriteUint8(h Hasher, v uint8) {
	h.Write([]byte{v})
}

// WriteUint16 writes v little-endian.
func WriteUint16(h Hasher, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	h.Write(b[:])
}

// WriteUint32 writes v little-endian.
func WriteUint32(h Hasher, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	h.Write(b[:])
}

// WriteUint64 writes v little-endian.
func WriteUint64(h Hasher, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

// WriteBool writes v as a single 0 or 1 byte.
func WriteBool(h Hasher, v bool) {
	var b uint8
	if v {
		b = 1
	}
	WriteUint8(h, b)
}

// WriteString writes the bytes of v followed by a 0xff terminator, so that
// adjacent strings cannot collide by shifting bytes between them.
func WriteString(h Hasher, v string) {
	io.WriteString(h, v)
	WriteUint8(h, 0xff)
}
