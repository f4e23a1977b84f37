package matrix

import (
	"github.com/itzmeanjan/frodopir/codec"
	"github.com/itzmeanjan/frodopir/rng"
)

// GenerateFromSeed deterministically fills a rows×cols matrix with bytes
// squeezed row by row from a Prng seeded with seed. Two independent calls
// with the same seed and dimensions always produce bitwise-identical
// matrices.
func GenerateFromSeed(seed []byte, rows, cols uint64) *Matrix {
	prng := rng.NewPrngFromSeed(seed)
	m := New(rows, cols)

	rowBuf := make([]byte, cols*4)
	for r := uint64(0); r < rows; r++ {
		if _, err := prng.Read(rowBuf); err != nil {
			panic("matrix: prng read failed: " + err.Error())
		}
		row := m.Row(r)
		for c := uint64(0); c < cols; c++ {
			row[c] = codec.Elem(rowBuf[c*4:])
		}
	}
	return m
}
