package matrix

import (
	"github.com/itzmeanjan/frodopir/internal/forkjoin"
	"github.com/itzmeanjan/frodopir/zq"
)

// Mul computes a·b over ℤ_q. a is m×k, b is k×n, the result is m×n. The
// inner loop order is r (output row), k (shared dimension), c (output
// column): each fixed r,k pair reads one element of a and streams across a
// full row of b, keeping both operands' inner-loop accesses contiguous.
// Accumulation wraps in ℤ_q; there is no value-dependent branch anywhere
// in the loop, so the running time depends only on the shapes of a and b,
// never on their contents.
//
// The outer loop is parallelized across whichever of m or n is larger, so
// that a wide result matrix splits the work across columns instead of
// starving on a handful of output rows.
func Mul(a, b *Matrix) *Matrix {
	if a.Cols != b.Rows {
		panic("matrix: dimension mismatch in Mul")
	}

	m, k, n := a.Rows, a.Cols, b.Cols
	out := New(m, n)

	if m >= n {
		forkjoin.Run(m, func(start, end uint64) {
			for r := start; r < end; r++ {
				aRow := a.Row(r)
				outRow := out.Row(r)
				for kk := uint64(0); kk < k; kk++ {
					av := aRow[kk]
					bRow := b.Row(kk)
					for c := uint64(0); c < n; c++ {
						outRow[c] += av * bRow[c]
					}
				}
			}
		})
		return out
	}

	forkjoin.Run(n, func(start, end uint64) {
		for r := uint64(0); r < m; r++ {
			aRow := a.Row(r)
			outRow := out.Row(r)
			for kk := uint64(0); kk < k; kk++ {
				av := aRow[kk]
				bRow := b.Row(kk)
				for c := start; c < end; c++ {
					outRow[c] += av * bRow[c]
				}
			}
		}
	})
	return out
}

// RowVecTimesTransposedMatrix computes v·B for a 1×k row vector v and a
// k×n matrix B, given bT = B.transpose() (n×k). It computes the same dot
// products as Mul(v, B) would, but walks bT row by row: each output
// column's dot product becomes a contiguous scan of one row of bT instead
// of a strided column scan of B. This is the hot path for server respond,
// where B (the parsed database) is known in advance and can be transposed
// once at setup.
//
// bT must have k columns and its row count is the output width n.
func RowVecTimesTransposedMatrix(v *Matrix, bT *Matrix) *Matrix {
	if v.Rows != 1 {
		panic("matrix: RowVecTimesTransposedMatrix requires a 1-row vector")
	}
	if v.Cols != bT.Cols {
		panic("matrix: dimension mismatch in RowVecTimesTransposedMatrix")
	}

	k := v.Cols
	n := bT.Rows
	out := New(1, n)
	vRow := v.Row(0)
	outRow := out.Row(0)

	forkjoin.Run(n, func(start, end uint64) {
		for c := start; c < end; c++ {
			bRow := bT.Row(c)
			var sum zq.Elem
			for kk := uint64(0); kk < k; kk++ {
				sum += vRow[kk] * bRow[kk]
			}
			outRow[c] = sum
		}
	})
	return out
}
