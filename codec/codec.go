// Package codec implements the little-endian byte encoding FrodoPIR uses
// for every Z_q element that crosses the wire or is expanded from a seed.
// It always uses the explicit byte-wise form of encoding/binary, never a
// host-endianness-dependent memory reinterpretation, so the wire format is
// identical on big-endian and little-endian hosts alike.
package codec

import (
	"encoding/binary"

	"github.com/itzmeanjan/frodopir/zq"
)

// PutElem writes v into dst[0:4] in little-endian order. dst must have
// length at least zq.ByteLen.
func PutElem(dst []byte, v zq.Elem) {
	binary.LittleEndian.PutUint32(dst, v)
}

// Elem reads a little-endian Z_q element from src[0:4]. src must have
// length at least zq.ByteLen.
func Elem(src []byte) zq.Elem {
	return binary.LittleEndian.Uint32(src)
}

// EncodeElems serializes a slice of elements into a freshly allocated byte
// slice, four bytes per element, in order.
func EncodeElems(vs []zq.Elem) []byte {
	out := make([]byte, len(vs)*zq.ByteLen)
	for i, v := range vs {
		PutElem(out[i*zq.ByteLen:], v)
	}
	return out
}

// DecodeElems is the inverse of EncodeElems. len(src) must be a multiple of
// zq.ByteLen.
func DecodeElems(src []byte) []zq.Elem {
	n := len(src) / zq.ByteLen
	out := make([]zq.Elem, n)
	for i := range out {
		out[i] = Elem(src[i*zq.ByteLen:])
	}
	return out
}

// Uint64FromLE assembles the bytes of src, at most 8 of them, into a
// little-endian uint64. Shorter reads are used as-is, occupying the low
// bytes of the result.
func Uint64FromLE(src []byte) uint64 {
	var word uint64
	for i, b := range src {
		word |= uint64(b) << (8 * i)
	}
	return word
}
