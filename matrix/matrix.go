// Package matrix implements the dense, row-major ℤ_q matrix engine
// FrodoPIR builds every other component on top of. Dimensions are fixed at
// construction. The two multiplication kernels are parallelized across an
// output axis via internal/forkjoin, following the fork-join discipline
// spec'd for this module's concurrency model; Transpose and Add run on the
// calling goroutine.
package matrix

import (
	"github.com/itzmeanjan/frodopir/zq"
)

// Matrix is a dense rows×cols matrix of ℤ_q elements in row-major order.
type Matrix struct {
	Rows uint64
	Cols uint64
	Data []zq.Elem
}

// New allocates a zero-valued rows×cols matrix.
func New(rows, cols uint64) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]zq.Elem, rows*cols)}
}

// Identity returns the n×n identity matrix: ones on the diagonal, zero
// elsewhere.
func Identity(n uint64) *Matrix {
	m := New(n, n)
	for i := uint64(0); i < n; i++ {
		m.Data[i*n+i] = 1
	}
	return m
}

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	out := New(m.Rows, m.Cols)
	copy(out.Data, m.Data)
	return out
}

// Get returns the element at (i, j). It panics if the index is out of
// bounds.
func (m *Matrix) Get(i, j uint64) zq.Elem {
	if i >= m.Rows || j >= m.Cols {
		panic("matrix: index out of range")
	}
	return m.Data[i*m.Cols+j]
}

// Set stores val at (i, j).
func (m *Matrix) Set(i, j uint64, val zq.Elem) {
	if i >= m.Rows || j >= m.Cols {
		panic("matrix: index out of range")
	}
	m.Data[i*m.Cols+j] = val
}

// AddAt adds val to the element at (i, j) in place, wrapping in ℤ_q.
func (m *Matrix) AddAt(i, j uint64, val zq.Elem) {
	m.Set(i, j, m.Get(i, j)+val)
}

// Row returns a view into row i's backing elements. Mutating the returned
// slice mutates m.
func (m *Matrix) Row(i uint64) []zq.Elem {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// Equals reports whether m and other have identical dimensions and
// elements. It never short-circuits on the first differing element; the
// comparison ORs together the XOR of every pair of corresponding elements
// and tests the accumulator against zero at the end.
func (m *Matrix) Equals(other *Matrix) bool {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		return false
	}

	var acc zq.Elem
	for i := range m.Data {
		acc |= m.Data[i] ^ other.Data[i]
	}
	return acc == 0
}

// Transpose returns a new cols×rows matrix that is the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := New(m.Cols, m.Rows)
	for i := uint64(0); i < m.Rows; i++ {
		for j := uint64(0); j < m.Cols; j++ {
			out.Set(j, i, m.Get(i, j))
		}
	}
	return out
}

// Add returns the element-wise ℤ_q sum of a and b. Both must share
// dimensions.
func Add(a, b *Matrix) *Matrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic("matrix: dimension mismatch in Add")
	}
	out := New(a.Rows, a.Cols)
	for i := range out.Data {
		out.Data[i] = a.Data[i] + b.Data[i]
	}
	return out
}
