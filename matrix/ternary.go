package matrix

import (
	"github.com/itzmeanjan/frodopir/rng"
	"github.com/itzmeanjan/frodopir/zq"
)

// ternaryIntervalSize is T = (2^32 - 2) / 3, the width of each of the
// three equal intervals a uniform 32-bit draw is classified into.
const ternaryIntervalSize = (1<<32 - 2) / 3

// ternaryRejectionMax is T_max = 3T: draws above this value are rejected
// and redrawn. Of the surviving draws, [0, T] holds T+1 values and (T, 2T]
// and (2T, 3T] hold T each, so the three ternary outcomes are uniform up
// to a bias of one value in about 2^32.
const ternaryRejectionMax = 3 * ternaryIntervalSize

// ternaryBufferWords is the number of 4-byte words refilled into the
// sampling buffer at a time, a multiple of the SHAKE128/TurboSHAKE128
// rate (168 bytes).
const ternaryBufferWords = (8 * 168) / 4

// SampleTernaryVector draws an n-element 1×n row vector from src, each
// element independently uniform over {q-1, 0, 1} (i.e. {-1, 0, +1}
// represented as their ℤ_q residues), via rejection sampling over 32-bit
// little-endian draws. The sampling buffer is refilled in bulk without
// discarding its unconsumed tail: a partially-consumed buffer keeps its
// remaining bytes at the front on refill.
func SampleTernaryVector(src rng.Source, n uint64) *Matrix {
	out := New(1, n)
	row := out.Row(0)

	buf := make([]byte, ternaryBufferWords*4)
	fill(src, buf)
	offset := 0

	for i := uint64(0); i < n; i++ {
		var v uint32
		for {
			if offset+4 > len(buf) {
				tail := len(buf) - offset
				copy(buf[:tail], buf[offset:])
				fill(src, buf[tail:])
				offset = 0
			}
			v = uint32(buf[offset]) | uint32(buf[offset+1])<<8 | uint32(buf[offset+2])<<16 | uint32(buf[offset+3])<<24
			offset += 4
			if v <= ternaryRejectionMax {
				break
			}
		}

		switch {
		case v <= ternaryIntervalSize:
			row[i] = 0
		case v <= 2*ternaryIntervalSize:
			row[i] = zq.One
		default:
			row[i] = zq.NegOne
		}
	}

	return out
}

func fill(src rng.Source, buf []byte) {
	if _, err := src.Read(buf); err != nil {
		panic("matrix: rng read failed: " + err.Error())
	}
}
