package frodopir

import (
	"fmt"
	"math"

	"github.com/itzmeanjan/frodopir/dbcodec"
	"github.com/itzmeanjan/frodopir/zq"
)

// lambda is the security parameter λ, fixed at 128 bits.
const lambda = 128

// SeedLen is the byte length of the public seed μ (λ/8).
const SeedLen = lambda / 8

// lweDimension is n, the fixed LWE dimension this scheme is defined for.
const lweDimension = 1774

// validDims lists the only (N, b) pairs this scheme accepts (FrodoPIR
// paper, https://ia.cr/2022/981, section 5.1).
var validDims = map[uint64]uint64{
	1 << 16: 10,
	1 << 17: 10,
	1 << 18: 10,
	1 << 19: 9,
	1 << 20: 9,
}

// Params is a validated instantiation of the scheme: the database shape
// (NumRows rows of RowByteLen bytes each), the parsed-matrix element
// bitlength Bitlen, and the derived quantities every other component
// needs. Params is immutable once constructed; every field is exported
// for read access. Construct one via NewParams.
type Params struct {
	NumRows    uint64
	RowByteLen uint64
	Bitlen     uint64

	// N is an alias for NumRows, kept because the scheme's literature
	// spells it that way.
	N uint64
	// Cols is k = ⌈8·RowByteLen / Bitlen⌉, the width of the parsed matrix
	// and of the hint M.
	Cols uint64
	// LWEDimension is n.
	LWEDimension uint64
}

// NewParams validates (numRows, rowByteLen, bitlen) against the scheme's
// supported (N, b) pairs and LWE correctness margin (Eq. 8 in section 5.1
// of https://ia.cr/2022/981), returning the derived Params, or
// ErrInvalidParameters if the tuple is rejected. This is the
// construction-time equivalent of the original design's compile-time
// rejection: Go has no consteval, so the check runs once, here, rather
// than being encoded in the type system.
func NewParams(numRows, rowByteLen, bitlen uint64) (*Params, error) {
	wantBitlen, ok := validDims[numRows]
	if !ok || wantBitlen != bitlen {
		return nil, fmt.Errorf("%w: N=%d, b=%d is not one of the supported (N, b) pairs", ErrInvalidParameters, numRows, bitlen)
	}

	rho := uint64(1) << bitlen
	floorSqrtN := uint64(math.Sqrt(float64(numRows)))
	if zq.Q < 8*rho*rho*floorSqrtN {
		return nil, fmt.Errorf("%w: correctness margin q >= 8*rho^2*floor(sqrt(N)) fails for N=%d, b=%d", ErrInvalidParameters, numRows, bitlen)
	}

	return &Params{
		NumRows:      numRows,
		RowByteLen:   rowByteLen,
		Bitlen:       bitlen,
		N:            numRows,
		Cols:         dbcodec.NumCols(rowByteLen, bitlen),
		LWEDimension: lweDimension,
	}, nil
}

// Delta returns Δ = ⌊q / ρ⌋ = 2^(32 - Bitlen), the scaling factor a query
// indicator is added at and a response is rounded by.
func (p *Params) Delta() uint32 {
	return uint32(1) << (32 - p.Bitlen)
}

// Rho returns ρ = 2^Bitlen, the parsed-matrix element modulus.
func (p *Params) Rho() uint64 {
	return uint64(1) << p.Bitlen
}

// String renders a short human-readable parameter dump, in the style of
// the diagnostic PrintParams helpers conventional for this kind of
// parameter type; it is not part of the wire protocol.
func (p *Params) String() string {
	return fmt.Sprintf("frodopir.Params{N: %d, RowByteLen: %d, Bitlen: %d, n: %d, k: %d}",
		p.NumRows, p.RowByteLen, p.Bitlen, p.LWEDimension, p.Cols)
}
