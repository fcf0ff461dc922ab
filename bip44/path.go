// Package bip44 parses and formats BIP44-style derivation path strings
// (m/44'/60'/0'/0/5) to and from arrays of 32-bit path indices, and
// provides the canonical path helpers for Ethereum, Cosmos, and Solana.
//
// Grounded on the tolerant-Seoul-crypto-accounts pkgs/bip32/path.go
// hardener-suffix handling and the IoFinnet internal/hd/derive.go
// explicit "m"-prefix state machine, adapted to accept hardened
// segments (spec requires them; the IoFinnet reference rejects them).
package bip44

import (
	"strconv"
	"strings"

	"github.com/not-for-prod/hdkit/curve"
	"github.com/not-for-prod/hdkit/hderr"
)

// Path is an ordered sequence of derivation indices.
type Path []uint32

// Parse converts a textual path (m, m/44', m/44'/60'/0'/0/5, ...) into a
// Path. The hardener suffix may be ' or h. Parse never mutates its input.
func Parse(text string) (Path, error) {
	indices, n, ok := tryParse(text, make([]uint32, strings.Count(text, "/")))
	if !ok {
		return nil, hderr.ErrInvalidPath
	}
	return Path(indices[:n]), nil
}

// TryParse writes parsed indices into out and reports how many were
// written. It returns false (and writes 0 to indicesWritten) on any
// malformed input, including a destination shorter than the path.
func TryParse(text string, out []uint32) (indicesWritten int, ok bool) {
	return tryParse(text, out)
}

func tryParse(text string, out []uint32) (int, bool) {
	if text == "" || text[0] != 'm' {
		return 0, false
	}
	if len(text) > 1 && text[1] != '/' {
		return 0, false
	}
	if text == "m" {
		return 0, true
	}

	rest := text[2:]
	if rest == "" {
		// "m/" with nothing after the slash is malformed, not a
		// zero-length path.
		return 0, false
	}

	segments := strings.Split(rest, "/")
	if len(segments) > len(out) {
		return 0, false
	}

	for i, segment := range segments {
		if segment == "" {
			return 0, false
		}

		hardened := false
		digits := segment
		if last := segment[len(segment)-1]; last == '\'' || last == 'h' {
			hardened = true
			digits = segment[:len(segment)-1]
		}
		if digits == "" {
			return 0, false
		}

		value, err := strconv.ParseUint(digits, 10, 32)
		if err != nil || value >= uint64(curve.HardenedOffset) {
			return 0, false
		}

		idx := uint32(value)
		if hardened {
			idx += curve.HardenedOffset
		}
		out[i] = idx
	}

	return len(segments), true
}

// Format renders indices as canonical text: m followed by /n for normal
// indices and /n' for hardened ones, where n is the value with the
// hardening offset removed.
func Format(indices []uint32) string {
	var b strings.Builder
	b.WriteByte('m')
	for _, idx := range indices {
		b.WriteByte('/')
		if curve.IsHardened(idx) {
			b.WriteString(strconv.FormatUint(uint64(idx-curve.HardenedOffset), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	}
	return b.String()
}

// Hardened adds the hardening offset to v. v must be < curve.HardenedOffset.
func Hardened(v uint32) uint32 {
	return v + curve.HardenedOffset
}

// EthereumPath returns the canonical EVM path for account.
func EthereumPath(account uint32) string {
	return Format([]uint32{Hardened(44), Hardened(60), Hardened(0), 0, account})
}

// CosmosPath returns the canonical Cosmos path for account.
func CosmosPath(account uint32) string {
	return Format([]uint32{Hardened(44), Hardened(118), Hardened(0), 0, account})
}

// SolanaPath returns the canonical Solana path for account.
func SolanaPath(account uint32) string {
	return Format([]uint32{Hardened(44), Hardened(501), Hardened(account), Hardened(0)})
}
