package bitgen

import (
	"errors"
	"fmt"
)

// ErrAlgorithmMismatch is returned when a state blob was produced by a
// different engine than the one it is restored into.
var ErrAlgorithmMismatch = errors.New("algorithm mismatch")

// ErrWordCount is returned when a state blob carries the wrong number of
// core words.
var ErrWordCount = errors.New("wrong number of state words")

// ErrEntropyLength is returned when an entropy source yields fewer or more
// words than requested.
var ErrEntropyLength = errors.New("malformed entropy length")

// ErrInvalidState is returned when a state blob is well formed but violates
// an engine invariant.
var ErrInvalidState = errors.New("invalid state")

// ErrNegativeJump is returned for a negative jump count
var ErrNegativeJump = errors.New("negative jump count")

// ErrNilDelta is returned by AdvanceBig for a nil delta
var ErrNilDelta = errors.New("nil advance delta")

// ErrUnsupported is returned when the engine does not provide the requested
// capability, e.g. Advance on JSF64.
var ErrUnsupported = errors.New("unsupported")

func errMismatch(want, got string) error {
	return fmt.Errorf("%w: want %q, got %q", ErrAlgorithmMismatch, want, got)
}

func errWords(algorithm string, want, got int) error {
	return fmt.Errorf("%w: %s wants %d, got %d", ErrWordCount, algorithm, want, got)
}
