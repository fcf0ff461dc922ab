// Package slip10 orchestrates master-key derivation and path walking over
// any curve.Curve: seed in, a chain of private key + chain code pairs
// out.
//
// Grounded on not-for-prod-crypto/bip44.go's iterate-and-reassign shape
// (kept, generalized from a hardcoded 5-level BIP44 walk to an
// arbitrary-length path over any curve) and on the anyproto-go-slip10
// reference file's DeriveForPath (master, then fold over path segments).
package slip10

import (
	"github.com/not-for-prod/hdkit/bip44"
	"github.com/not-for-prod/hdkit/curve"
	"github.com/not-for-prod/hdkit/hderr"
)

// DeriveMaster computes the master key and chain code for seed on c.
func DeriveMaster(c curve.Curve, seed []byte) (key, chainCode [32]byte, err error) {
	return c.MasterFromSeed(seed)
}

// DerivePath computes the master key, then applies child derivation for
// each index in path in order. path must be non-empty.
func DerivePath(c curve.Curve, seed []byte, path []uint32) (key, chainCode [32]byte, err error) {
	if len(path) == 0 {
		return key, chainCode, hderr.ErrInvalidPath
	}

	key, chainCode, err = c.MasterFromSeed(seed)
	if err != nil {
		return key, chainCode, err
	}

	for _, index := range path {
		key, chainCode, err = c.DeriveChild(key, chainCode, index)
		if err != nil {
			return key, chainCode, err
		}
	}
	return key, chainCode, nil
}

// DerivePathString parses text via bip44.Parse, then dispatches to
// DerivePath. The master-only path "m" yields the master key and chain
// code from DeriveMaster.
func DerivePathString(c curve.Curve, seed []byte, text string) (key, chainCode [32]byte, err error) {
	path, err := bip44.Parse(text)
	if err != nil {
		return key, chainCode, err
	}
	if len(path) == 0 {
		return DeriveMaster(c, seed)
	}
	return DerivePath(c, seed, path)
}

// DeriveMasterInto is the non-raising, buffer-out form of DeriveMaster.
// It returns false without touching key/chainCode if either has a length
// other than 32.
func DeriveMasterInto(c curve.Curve, seed []byte, key, chainCode []byte) bool {
	if len(key) != curve.ChainCodeSize || len(chainCode) != curve.ChainCodeSize {
		return false
	}
	k, cc, err := DeriveMaster(c, seed)
	if err != nil {
		return false
	}
	copy(key, k[:])
	copy(chainCode, cc[:])
	return true
}

// DerivePathInto is the non-raising, buffer-out form of DerivePath.
func DerivePathInto(c curve.Curve, seed []byte, path []uint32, key, chainCode []byte) bool {
	if len(key) != curve.ChainCodeSize || len(chainCode) != curve.ChainCodeSize {
		return false
	}
	k, cc, err := DerivePath(c, seed, path)
	if err != nil {
		return false
	}
	copy(key, k[:])
	copy(chainCode, cc[:])
	return true
}

// DerivePathStringInto is the non-raising, buffer-out form of
// DerivePathString.
func DerivePathStringInto(c curve.Curve, seed []byte, text string, key, chainCode []byte) bool {
	if len(key) != curve.ChainCodeSize || len(chainCode) != curve.ChainCodeSize {
		return false
	}
	k, cc, err := DerivePathString(c, seed, text)
	if err != nil {
		return false
	}
	copy(key, k[:])
	copy(chainCode, cc[:])
	return true
}
