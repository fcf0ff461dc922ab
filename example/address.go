package main

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/sha3"
)

// tronAddress derives a TRON base58check address from an uncompressed
// secp256k1 public key (65 bytes, 0x04 prefix). The algorithm matches
// Ethereum's Keccak-256-of-coordinates address derivation up through the
// last-20-bytes step, then switches to TRON's 0x41 prefix and Bitcoin-style
// double-SHA256 checksum before base58 encoding.
func tronAddress(uncompressed [65]byte) string {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(uncompressed[1:])
	hashBytes := hash.Sum(nil)

	addressBytes := append([]byte{0x41}, hashBytes[len(hashBytes)-20:]...)

	firstHash := sha256.Sum256(addressBytes)
	secondHash := sha256.Sum256(firstHash[:])

	addressWithChecksum := append(addressBytes, secondHash[:4]...)
	return base58.Encode(addressWithChecksum)
}
