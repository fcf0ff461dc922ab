// Package bip39 validates English BIP39 mnemonics and expands them (with
// an optional passphrase) into a 64-byte seed via PBKDF2-HMAC-SHA512.
//
// Grounded on not-for-prod-crypto/keys.go's use of
// github.com/tyler-smith/go-bip39 for mnemonic validation and on
// mnemonic.go's use of the same library's entropy/wordlist API. Seed
// expansion is implemented directly against golang.org/x/crypto/pbkdf2
// (the teacher already depends on golang.org/x/crypto for sha3) with
// explicit NFKD normalization via golang.org/x/text/unicode/norm,
// resolving spec.md §9's BIP39-normalization Open Question in favor of
// correctness over source-fidelity.
package bip39

import (
	"crypto/sha512"
	"strings"

	tsbip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/not-for-prod/hdkit/hderr"
)

// SeedSize is the fixed output length of mnemonic-to-seed expansion.
const SeedSize = 64

const pbkdf2Iterations = 2048

var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// Validate checks that mnemonic has a legal word count, consists only of
// words from the canonical English wordlist, and carries a correct
// checksum.
func Validate(mnemonic string) error {
	if !TryValidate(mnemonic) {
		return hderr.ErrInvalidMnemonic
	}
	return nil
}

// TryValidate is the non-raising form of Validate.
func TryValidate(mnemonic string) bool {
	words := strings.Fields(mnemonic)
	if !validWordCounts[len(words)] {
		return false
	}
	return tsbip39.IsMnemonicValid(canonical(words))
}

// Seed validates mnemonic and expands it (with passphrase) into a 64-byte
// seed.
func Seed(mnemonic, passphrase string) ([SeedSize]byte, error) {
	var out [SeedSize]byte
	if err := Validate(mnemonic); err != nil {
		return out, err
	}
	return seedUnchecked(mnemonic, passphrase), nil
}

// TrySeed is the non-raising, buffer-out form of Seed. It returns false
// without writing to out if mnemonic is invalid or len(out) != SeedSize.
func TrySeed(mnemonic, passphrase string, out []byte) bool {
	if len(out) != SeedSize {
		return false
	}
	if !TryValidate(mnemonic) {
		return false
	}
	seed := seedUnchecked(mnemonic, passphrase)
	copy(out, seed[:])
	return true
}

func seedUnchecked(mnemonic, passphrase string) [SeedSize]byte {
	normalizedMnemonic := norm.NFKD.String(canonical(strings.Fields(mnemonic)))
	salt := append([]byte("mnemonic"), norm.NFKD.Bytes([]byte(passphrase))...)

	derived := pbkdf2.Key([]byte(normalizedMnemonic), salt, pbkdf2Iterations, SeedSize, sha512.New)

	var out [SeedSize]byte
	copy(out[:], derived)
	return out
}

// canonical rejoins whitespace-separated words with single spaces, per
// spec.md §4.4's "exact input string with single-space separators".
func canonical(words []string) string {
	return strings.Join(words, " ")
}
