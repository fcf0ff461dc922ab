// Package wallet glues seed+path derivation to a per-curve signing and
// public-key facade. It is the only package that composes bip39, slip10,
// and curve; textual paths reach bip44 through slip10.
//
// Grounded on not-for-prod-crypto/keys.go's construction flow (validate
// mnemonic -> seed -> master -> path-derive -> curve keypair),
// generalized from a single hardcoded secp256k1 flow into the two-shape
// facade (Edwards, Weierstrass) spec.md §4.5 requires.
package wallet

import (
	"fmt"

	"github.com/not-for-prod/hdkit/bip39"
	"github.com/not-for-prod/hdkit/curve"
	"github.com/not-for-prod/hdkit/hderr"
	"github.com/not-for-prod/hdkit/slip10"
)

// EdwardsWallet holds a materialized Ed25519 keypair.
type EdwardsWallet struct {
	privateKey [32]byte
	publicKey  [curve.Ed25519PubKeySize]byte
}

// NewEdwardsWalletFromPrivateKey materializes an Ed25519 wallet directly
// from a 32-byte private key (SLIP-0010 seed).
func NewEdwardsWalletFromPrivateKey(priv [32]byte) (*EdwardsWallet, error) {
	pub, err := curve.Ed25519.PublicKey(priv)
	if err != nil {
		return nil, err
	}
	w := &EdwardsWallet{privateKey: priv}
	copy(w.publicKey[:], pub.Raw)
	return w, nil
}

// NewEdwardsWalletFromSeed derives the private key at path over seed and
// materializes the wallet.
func NewEdwardsWalletFromSeed(seed []byte, path []uint32) (*EdwardsWallet, error) {
	key, _, err := slip10.DerivePath(curve.Ed25519, seed, path)
	if err != nil {
		return nil, err
	}
	return NewEdwardsWalletFromPrivateKey(key)
}

// NewEdwardsWalletFromSeedPath is NewEdwardsWalletFromSeed with a textual
// path.
func NewEdwardsWalletFromSeedPath(seed []byte, path string) (*EdwardsWallet, error) {
	key, _, err := slip10.DerivePathString(curve.Ed25519, seed, path)
	if err != nil {
		return nil, err
	}
	return NewEdwardsWalletFromPrivateKey(key)
}

// NewEdwardsWalletFromMnemonic expands mnemonic+passphrase into a seed,
// then derives at path.
func NewEdwardsWalletFromMnemonic(mnemonic, passphrase string, path []uint32) (*EdwardsWallet, error) {
	seed, err := bip39.Seed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return NewEdwardsWalletFromSeed(seed[:], path)
}

// NewEdwardsWalletFromMnemonicPath is NewEdwardsWalletFromMnemonic with a
// textual path.
func NewEdwardsWalletFromMnemonicPath(mnemonic, passphrase, path string) (*EdwardsWallet, error) {
	seed, err := bip39.Seed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return NewEdwardsWalletFromSeedPath(seed[:], path)
}

// PublicKey returns the wallet's 32-byte Ed25519 public key.
func (w *EdwardsWallet) PublicKey() [curve.Ed25519PubKeySize]byte {
	return w.publicKey
}

// Sign signs data, returning a 64-byte Ed25519 signature.
func (w *EdwardsWallet) Sign(data []byte) ([]byte, error) {
	return curve.Ed25519.Sign(w.privateKey, data)
}

// SignInto is the buffer-out form of Sign. It returns false without
// signing if len(out) != curve.Ed25519SigSize.
func (w *EdwardsWallet) SignInto(data, out []byte) bool {
	if len(out) != curve.Ed25519SigSize {
		return false
	}
	sig, err := w.Sign(data)
	if err != nil {
		return false
	}
	copy(out, sig)
	return true
}

// WeierstrassWallet holds a materialized secp256k1 or NIST P-256
// keypair with both compressed and uncompressed public-key encodings
// pre-computed at construction: Ethereum address derivation needs the
// uncompressed form, Cosmos needs compressed, and paying for both once
// avoids repeated EC multiplications during signing workloads.
type WeierstrassWallet struct {
	curve        curve.Curve
	privateKey   [32]byte
	compressed   [curve.CompressedPubKeySize]byte
	uncompressed [curve.UncompressedPubKeySize]byte
}

// NewWeierstrassWalletFromPrivateKey materializes a wallet for c directly
// from a 32-byte private key. c must be curve.Secp256k1 or curve.NistP256.
func NewWeierstrassWalletFromPrivateKey(c curve.Curve, priv [32]byte) (*WeierstrassWallet, error) {
	pub, err := c.PublicKey(priv)
	if err != nil {
		return nil, err
	}
	if len(pub.Compressed) != curve.CompressedPubKeySize || len(pub.Uncompressed) != curve.UncompressedPubKeySize {
		return nil, fmt.Errorf("%w: curve %s is not a Weierstrass curve", hderr.ErrInvalidCurveInput, c.Name())
	}
	w := &WeierstrassWallet{curve: c, privateKey: priv}
	copy(w.compressed[:], pub.Compressed)
	copy(w.uncompressed[:], pub.Uncompressed)
	return w, nil
}

// NewWeierstrassWalletFromSeed derives the private key at path over seed
// on c and materializes the wallet.
func NewWeierstrassWalletFromSeed(c curve.Curve, seed []byte, path []uint32) (*WeierstrassWallet, error) {
	key, _, err := slip10.DerivePath(c, seed, path)
	if err != nil {
		return nil, err
	}
	return NewWeierstrassWalletFromPrivateKey(c, key)
}

// NewWeierstrassWalletFromSeedPath is NewWeierstrassWalletFromSeed with a
// textual path.
func NewWeierstrassWalletFromSeedPath(c curve.Curve, seed []byte, path string) (*WeierstrassWallet, error) {
	key, _, err := slip10.DerivePathString(c, seed, path)
	if err != nil {
		return nil, err
	}
	return NewWeierstrassWalletFromPrivateKey(c, key)
}

// NewWeierstrassWalletFromMnemonic expands mnemonic+passphrase into a
// seed, then derives at path on c.
func NewWeierstrassWalletFromMnemonic(c curve.Curve, mnemonic, passphrase string, path []uint32) (*WeierstrassWallet, error) {
	seed, err := bip39.Seed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return NewWeierstrassWalletFromSeed(c, seed[:], path)
}

// NewWeierstrassWalletFromMnemonicPath is NewWeierstrassWalletFromMnemonic
// with a textual path.
func NewWeierstrassWalletFromMnemonicPath(c curve.Curve, mnemonic, passphrase, path string) (*WeierstrassWallet, error) {
	seed, err := bip39.Seed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return NewWeierstrassWalletFromSeedPath(c, seed[:], path)
}

// CompressedPublicKey returns the 33-byte compressed public key.
func (w *WeierstrassWallet) CompressedPublicKey() [curve.CompressedPubKeySize]byte {
	return w.compressed
}

// UncompressedPublicKey returns the 65-byte uncompressed public key.
func (w *WeierstrassWallet) UncompressedPublicKey() [curve.UncompressedPubKeySize]byte {
	return w.uncompressed
}

// Sign signs data, returning a 64-byte r||s signature (low-S canonical
// for secp256k1).
func (w *WeierstrassWallet) Sign(data []byte) ([]byte, error) {
	return w.curve.Sign(w.privateKey, data)
}

// SignInto is the buffer-out form of Sign.
func (w *WeierstrassWallet) SignInto(data, out []byte) bool {
	if len(out) != curve.ECDSASigSize {
		return false
	}
	sig, err := w.Sign(data)
	if err != nil {
		return false
	}
	copy(out, sig)
	return true
}

// SignRecoverable signs data with a secp256k1 wallet, returning a 65-byte
// r||s||v signature. It fails for curves that do not support recoverable
// signatures (NIST P-256).
func (w *WeierstrassWallet) SignRecoverable(data []byte) ([curve.RecoverableSigSize]byte, error) {
	var out [curve.RecoverableSigSize]byte
	signer, ok := w.curve.(curve.RecoverableSigner)
	if !ok {
		return out, fmt.Errorf("%w: curve %s has no recoverable signer", hderr.ErrInvalidCurveInput, w.curve.Name())
	}
	return signer.SignRecoverable(w.privateKey, data)
}

// SignRecoverableInto is the buffer-out form of SignRecoverable.
func (w *WeierstrassWallet) SignRecoverableInto(data, out []byte) bool {
	if len(out) != curve.RecoverableSigSize {
		return false
	}
	sig, err := w.SignRecoverable(data)
	if err != nil {
		return false
	}
	copy(out, sig[:])
	return true
}
