// Command example demonstrates deriving a TRON wallet from a supplied
// mnemonic using hdkit's bip44/bip39/wallet packages.
//
// hdkit does not generate mnemonics itself (see spec.md's non-goals on
// randomness sourcing); the mnemonic here is a well-known BIP39 test
// vector rather than freshly generated entropy.
package main

import (
	"encoding/hex"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/not-for-prod/hdkit/bip44"
	"github.com/not-for-prod/hdkit/cointype"
	"github.com/not-for-prod/hdkit/curve"
	"github.com/not-for-prod/hdkit/wallet"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	const mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	path := bip44.Format(bip44.Path{
		bip44.Hardened(44),
		bip44.Hardened(cointype.Tron),
		bip44.Hardened(0),
		0,
		0,
	})

	log.Info().Str("path", path).Msg("deriving tron wallet from supplied mnemonic")

	w, err := wallet.NewWeierstrassWalletFromMnemonicPath(curve.Secp256k1, mnemonic, "", path)
	if err != nil {
		log.Fatal().Err(err).Msg("wallet derivation failed")
	}

	compressed := w.CompressedPublicKey()
	address := tronAddress(w.UncompressedPublicKey())

	log.Info().
		Str("public_key", hex.EncodeToString(compressed[:])).
		Str("address", address).
		Msg("derived tron wallet")
}
