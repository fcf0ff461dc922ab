// Package curve implements the per-curve primitives CurveOps exposes:
// master-key-from-seed, child-key derivation, public-key encoding, and
// signing, for secp256k1, NIST P-256, and Ed25519.
//
// There are exactly three curves and they are known at compile time, so
// Curve is a closed set of package-level singletons rather than an open
// interface hierarchy: callers select a curve by identity (Secp256k1,
// NistP256, Ed25519); only the optional RecoverableSigner capability is
// detected with a type assertion.
package curve

// Fixed, byte-exact sizes from the external interface contract. Every
// buffer-out API in this module and its callers is sized against these
// constants instead of magic numbers.
const (
	SeedSize               = 64
	PrivateKeySize         = 32
	ChainCodeSize          = 32
	CompressedPubKeySize   = 33
	UncompressedPubKeySize = 65
	Ed25519PubKeySize      = 32
	Ed25519SigSize         = 64
	ECDSASigSize           = 64
	RecoverableSigSize     = 65

	// HardenedOffset is the index at and above which derivation is
	// hardened (uses the parent private key rather than the parent
	// public key).
	HardenedOffset uint32 = 0x80000000
)

// IsHardened reports whether index falls in the hardened range.
func IsHardened(index uint32) bool {
	return index >= HardenedOffset
}

// PublicKey holds whichever encodings a curve produces. Ed25519 only ever
// populates Raw; Weierstrass curves populate Compressed and Uncompressed
// and leave Raw nil.
type PublicKey struct {
	Raw          []byte // Ed25519: 32 bytes
	Compressed   []byte // Weierstrass: 33 bytes, 0x02/0x03 prefix
	Uncompressed []byte // Weierstrass: 65 bytes, 0x04 prefix
}

// Curve is the per-curve capability set CurveOps exposes. Implementations
// are process-wide immutable singletons; every method is safe to call
// concurrently.
type Curve interface {
	// Name returns a human-readable curve name for diagnostics.
	Name() string

	// MasterFromSeed implements SLIP-0010 master key generation:
	// I = HMAC-SHA512(curve-specific name bytes, seed), split into
	// I_L (key) and I_R (chain code), with a bounded retry loop on
	// Weierstrass curves when I_L is zero or not less than the curve
	// order.
	MasterFromSeed(seed []byte) (key, chainCode [32]byte, err error)

	// DeriveChild implements SLIP-0010 child key derivation at index.
	// Hardened indices (index >= HardenedOffset) use the parent private
	// key; normal indices use the parent's compressed public key. Ed25519
	// rejects normal indices outright (hderr.ErrNormalDerivationOnEd25519).
	DeriveChild(key, chainCode [32]byte, index uint32) (childKey, childChainCode [32]byte, err error)

	// PublicKey derives the public key for priv.
	PublicKey(priv [32]byte) (PublicKey, error)

	// Sign produces a non-recoverable signature over msg.
	Sign(priv [32]byte, msg []byte) ([]byte, error)

	// Verify checks sig over msg against pub.
	Verify(pub PublicKey, msg, sig []byte) bool
}

// RecoverableSigner is implemented by curves that can produce a signature
// carrying enough information to recover the signing public key. Only
// secp256k1 implements it.
type RecoverableSigner interface {
	SignRecoverable(priv [32]byte, msg []byte) ([RecoverableSigSize]byte, error)
}

// childData builds the HMAC message for a child derivation step: the
// hardened form is 0x00 || parentKey || index_be32, the normal form is
// serP(parentPub) || index_be32.
func childData(hardened bool, key [32]byte, pub []byte, index uint32) []byte {
	idx := be32(index)
	if hardened {
		data := make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, key[:]...)
		data = append(data, idx[:]...)
		return data
	}
	data := make([]byte, 0, len(pub)+4)
	data = append(data, pub...)
	data = append(data, idx[:]...)
	return data
}

func be32(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
