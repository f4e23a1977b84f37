package frodopir

import (
	"fmt"

	"github.com/itzmeanjan/frodopir/rng"
	"github.com/pkg/errors"
)

// ErrInvalidParameters is returned by NewParams when the requested
// (N, rowByteLen, bitlen) tuple isn't one of the fixed (N, b) pairs the
// scheme is defined for, or fails the LWE correctness margin (see the
// FrodoPIR paper, https://ia.cr/2022/981, section 5.1). This is the only
// error that can prevent construction.
var ErrInvalidParameters = errors.New("frodopir: invalid parameters")

// ErrEntropyFailure is the error rng.NewCsprng wraps when the system
// entropy source cannot be read. It is a thin re-export of
// rng.ErrEntropyFailure so callers of this package never need to import
// package rng directly just to check the error.
var ErrEntropyFailure = rng.ErrEntropyFailure

// ErrInvalidBufferLen is the static length-check error for buffer-size
// mismatches: a programming error, returned by ServerSetup, ClientSetup
// and Server.Respond. Client.Query and Client.ProcessResponse, whose
// signatures return only a bool, report a wrong-length buffer as false.
var ErrInvalidBufferLen = errors.New("frodopir: invalid buffer length")

func errInvalidSeedLen(got int) error {
	return fmt.Errorf("%w: seed is %d bytes, want %d", ErrInvalidBufferLen, got, SeedLen)
}

func errInvalidDBLen(got, want uint64) error {
	return fmt.Errorf("%w: raw database is %d bytes, want %d", ErrInvalidBufferLen, got, want)
}

func errInvalidQueryLen(got, want uint64) error {
	return fmt.Errorf("%w: query is %d bytes, want %d", ErrInvalidBufferLen, got, want)
}

func errInvalidHintLen(got, want uint64) error {
	return fmt.Errorf("%w: hint is %d bytes, want %d", ErrInvalidBufferLen, got, want)
}

func errInvalidResponseLen(got, want uint64) error {
	return fmt.Errorf("%w: response is %d bytes, want %d", ErrInvalidBufferLen, got, want)
}

func errInvalidRowLen(got, want uint64) error {
	return fmt.Errorf("%w: output row buffer is %d bytes, want %d", ErrInvalidBufferLen, got, want)
}
