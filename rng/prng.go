package rng

import "golang.org/x/crypto/sha3"

// Prng is the deterministic, seeded byte source used solely to expand a
// short seed μ into the public matrix A. Two independent callers that
// construct a Prng from the same seed and squeeze the same number of
// bytes always observe the same byte stream; this is what lets client and
// server regenerate A independently instead of transmitting it.
type Prng struct {
	shake sha3.ShakeHash
}

// NewPrngFromSeed absorbs seed into a fresh SHAKE128 state and returns a
// Prng ready to squeeze output bytes.
func NewPrngFromSeed(seed []byte) *Prng {
	shake := sha3.NewShake128()
	_, _ = shake.Write(seed)
	return &Prng{shake: shake}
}

// Read squeezes len(buf) bytes out of the SHAKE128 state.
func (p *Prng) Read(buf []byte) (int, error) {
	return p.shake.Read(buf)
}
