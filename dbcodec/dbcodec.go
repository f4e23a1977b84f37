// Package dbcodec converts between a raw byte database (N rows of ℓ bytes
// each) and the bit-packed N×k ℤ_q matrix the protocol layer operates on,
// where k = ⌈8ℓ/b⌉ and b is the configured element bitlength. Both
// directions are parallelized across rows, since rows are independent of
// one another, following the fork-join discipline shared with package
// matrix.
package dbcodec

import (
	"github.com/itzmeanjan/frodopir/codec"
	"github.com/itzmeanjan/frodopir/internal/forkjoin"
	"github.com/itzmeanjan/frodopir/matrix"
	"github.com/itzmeanjan/frodopir/zq"
)

// NumCols returns k = ⌈8·rowByteLen / bitlen⌉, the width of the parsed
// matrix produced from rows of rowByteLen bytes packed bitlen bits at a
// time.
func NumCols(rowByteLen, bitlen uint64) uint64 {
	bits := rowByteLen * 8
	return (bits + bitlen - 1) / bitlen
}

// Parse converts raw, a numRows*rowByteLen byte database, into a
// numRows×NumCols(rowByteLen,bitlen) matrix with every element strictly
// less than 2^bitlen. Rows are parsed independently and in parallel.
func Parse(raw []byte, numRows, rowByteLen, bitlen uint64) *matrix.Matrix {
	cols := NumCols(rowByteLen, bitlen)
	out := matrix.New(numRows, cols)

	forkjoin.Run(numRows, func(start, end uint64) {
		for r := start; r < end; r++ {
			parseRow(raw[r*rowByteLen:(r+1)*rowByteLen], out.Row(r), bitlen)
		}
	})

	return out
}

// parseRow packs a single ℓ-byte row into dst (length k) using a 64-bit
// rolling bit-buffer: whole bytes are pulled in from the low end of the
// row and stacked into the buffer, then as many whole bitlen-bit elements
// as are available are peeled off the low end of the buffer. A final
// partial element, if any bits remain once the row is exhausted, is
// emitted as-is.
func parseRow(row []byte, dst []zq.Elem, bitlen uint64) {
	mask := uint64(1)<<bitlen - 1

	var buffer uint64
	var bufBits uint64
	byteOff := uint64(0)
	colIdx := uint64(0)
	cols := uint64(len(dst))

	for byteOff < uint64(len(row)) {
		remaining := uint64(len(row)) - byteOff
		fillableBits := 64 - bufBits
		readableBytes := fillableBits / 8
		if readableBytes > remaining {
			readableBytes = remaining
		}

		word := codec.Uint64FromLE(row[byteOff : byteOff+readableBytes])
		byteOff += readableBytes

		buffer |= word << bufBits
		bufBits += readableBytes * 8

		for bufBits >= bitlen && colIdx < cols {
			dst[colIdx] = zq.Elem(buffer & mask)
			buffer >>= bitlen
			bufBits -= bitlen
			colIdx++
		}
	}

	if bufBits > 0 && colIdx < cols {
		dst[colIdx] = zq.Elem(buffer & mask)
	}
}

// Serialize is the inverse of Parse: it packs m (numRows×k, k =
// NumCols(rowByteLen,bitlen)) back into numRows*rowByteLen raw bytes. Bits
// produced past the 8·rowByteLen boundary of a row, up to bitlen-1 of them
// since k·bitlen can exceed 8·rowByteLen, are discarded.
func Serialize(m *matrix.Matrix, rowByteLen, bitlen uint64) []byte {
	out := make([]byte, m.Rows*rowByteLen)

	forkjoin.Run(m.Rows, func(start, end uint64) {
		for r := start; r < end; r++ {
			SerializeRow(m.Row(r), rowByteLen, bitlen, out[r*rowByteLen:(r+1)*rowByteLen])
		}
	})

	return out
}

// SerializeRow packs one matrix row (row[j] < 2^bitlen for every j) into
// dst, a rowByteLen-byte buffer. It is the 1-row specialization Client
// uses to turn a decoded ℤ_q row vector back into the original ℓ-byte
// database row.
func SerializeRow(row []zq.Elem, rowByteLen, bitlen uint64, dst []byte) {
	mask := uint64(1)<<bitlen - 1
	totalBits := rowByteLen * 8

	var buffer uint64
	var bufBits uint64
	byteOff := uint64(0)

	for colIdx := 0; colIdx < len(row); colIdx++ {
		remainingBits := totalBits - (byteOff*8 + bufBits)
		take := bitlen
		if remainingBits < take {
			take = remainingBits
		}

		selected := uint64(row[colIdx]) & mask
		buffer |= selected << bufBits
		bufBits += take

		writableBits := bufBits &^ 7
		writableBytes := writableBits / 8
		for i := uint64(0); i < writableBytes; i++ {
			dst[byteOff+i] = byte(buffer >> (8 * i))
		}
		buffer >>= writableBits
		bufBits -= writableBits
		byteOff += writableBytes
	}
}
