// Package hderr defines the sentinel error kinds shared by every package in
// hdkit. Callers compare against these with errors.Is; the wrapped detail
// attached with fmt.Errorf never includes key or chain-code bytes.
package hderr

import "errors"

var (
	// ErrInvalidPath marks a malformed BIP44 path string, an index that
	// overflows the hardening offset, or an empty path where one is required.
	ErrInvalidPath = errors.New("hdkit: invalid derivation path")

	// ErrInvalidMnemonic marks a wrong word count, an unrecognized word, or
	// a checksum mismatch.
	ErrInvalidMnemonic = errors.New("hdkit: invalid mnemonic")

	// ErrNormalDerivationOnEd25519 marks a non-hardened index requested
	// against the Ed25519 curve, which SLIP-0010 forbids.
	ErrNormalDerivationOnEd25519 = errors.New("hdkit: ed25519 requires hardened derivation")

	// ErrBufferTooSmall marks an out-parameter buffer whose length does not
	// match the operation's fixed output size.
	ErrBufferTooSmall = errors.New("hdkit: destination buffer has wrong size")

	// ErrInvalidCurveInput marks a curve operation that cannot be carried
	// out: a Weierstrass retry loop that failed to terminate within its
	// bounded iteration count, a recoverable signature whose recovery
	// header is out of range, a recoverable signature requested on a curve
	// without that capability, or a non-Weierstrass curve passed to a
	// Weierstrass wallet.
	ErrInvalidCurveInput = errors.New("hdkit: invalid curve input")
)
