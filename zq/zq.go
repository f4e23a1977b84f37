// Package zq defines the arithmetic substrate FrodoPIR computes over:
// Z_q with q = 2^32, i.e. native uint32 wraparound arithmetic.
package zq

// Elem is a single element of Z_q, q = 2^32. Addition, subtraction and
// multiplication all wrap modulo 2^32 by relying on Go's defined uint32
// overflow semantics; no element ever needs explicit reduction.
type Elem = uint32

// Bits is the bit width of the ring, i.e. log2(Q).
const Bits = 32

// Q is the ring modulus, 2^32. It does not fit in a uint32, so it is only
// useful for computations carried out in a wider type (uint64).
const Q uint64 = 1 << Bits

// One and NegOne are the two non-zero values a ternary sample can take.
const (
	One    Elem = 1
	NegOne Elem = 0xFFFFFFFF // -1 mod 2^32
)

// ByteLen is the serialized width of a single element.
const ByteLen = Bits / 8
