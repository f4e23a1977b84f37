// Package rng provides the two extendable-output byte sources FrodoPIR
// builds on: a deterministic, seeded Prng used to expand a short seed into
// the public matrix A, and an entropy-seeded Csprng used by the client to
// sample ternary secrets and errors. Both wrap a SHA-3 derived XOF from
// golang.org/x/crypto/sha3, mirroring the teacher's own rand package shape
// (a single Read-based source feeding every sampler) without the teacher's
// AES-CTR construction, since FrodoPIR's wire-format and test vectors are
// defined directly in terms of a SHAKE/TurboSHAKE transcript.
package rng

// Source is any byte stream that can feed the uniform and ternary
// samplers in package matrix. Both Prng and Csprng implement it.
type Source interface {
	// Read fills buf with the next len(buf) bytes of the stream. It never
	// returns a short read or a non-nil error for a well-formed Source.
	Read(buf []byte) (int, error)
}
