package matrix

import "github.com/itzmeanjan/frodopir/codec"

// ByteLen returns the length of m's little-endian serialization.
func (m *Matrix) ByteLen() uint64 {
	return m.Rows * m.Cols * 4
}

// SerializeLE writes m into dst in row-major order, 4 little-endian bytes
// per element. dst must be at least m.ByteLen() bytes long.
func (m *Matrix) SerializeLE(dst []byte) {
	copy(dst, codec.EncodeElems(m.Data))
}

// DeserializeLE is the inverse of SerializeLE: it reads a rows×cols
// matrix out of src, which must be at least rows*cols*4 bytes long.
func DeserializeLE(src []byte, rows, cols uint64) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: codec.DecodeElems(src[:rows*cols*4])}
}
