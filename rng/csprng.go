package rng

import (
	"crypto/rand"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// ErrEntropyFailure is returned by NewCsprng when the system entropy
// source fails to produce a seed. It never originates from
// NewCsprngFromSeed, which takes its seed directly from the caller.
var ErrEntropyFailure = errors.New("rng: failed to read system entropy")

// seedLen is the number of entropy bytes absorbed before finalizing a
// fresh Csprng, matching the original implementation's 32-byte seed.
const seedLen = 32

// Csprng is the cryptographically-secure byte source the client uses to
// sample ternary secrets and errors, and to pick a fresh seed for a new
// database generation. It wraps TurboSHAKE128, a faster SHA-3-derived XOF
// than classic SHAKE128.
type Csprng struct {
	shake sha3.ShakeHash
}

// NewCsprng seeds a Csprng from crypto/rand, the process's system entropy
// source. It returns ErrEntropyFailure if that source cannot be read.
func NewCsprng() (*Csprng, error) {
	seed := make([]byte, seedLen)
	if _, err := rand.Read(seed); err != nil {
		return nil, errors.Wrap(ErrEntropyFailure, err.Error())
	}
	return NewCsprngFromSeed(seed), nil
}

// NewCsprngFromSeed builds a Csprng from an explicit seed, bypassing the
// system entropy source entirely. It exists so that tests (and callers
// who manage their own entropy) can reproduce a fixed stream of secret
// and error samples deterministically.
func NewCsprngFromSeed(seed []byte) *Csprng {
	shake := sha3.NewTurboShake128(0x1F)
	_, _ = shake.Write(seed)
	return &Csprng{shake: shake}
}

// Read squeezes len(buf) bytes out of the TurboSHAKE128 state.
func (c *Csprng) Read(buf []byte) (int, error) {
	return c.shake.Read(buf)
}
