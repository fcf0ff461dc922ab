package curve

import (
	stded25519 "crypto/ed25519"

	"github.com/not-for-prod/hdkit/hderr"
)

// Ed25519 SLIP-0010 derivation has no retry loop (any 32-byte I_L is a
// valid Ed25519 seed) and forbids non-hardened child indices outright,
// matching the anyproto-go-slip10 reference file's DeriveForPath/Derive
// and the spec's Open Question resolution against the source's
// permissive behavior.

type ed25519Curve struct {
	name    string
	hmacKey []byte
}

// Ed25519 is the singleton CurveOps implementation for Ed25519.
var Ed25519 Curve = &ed25519Curve{
	name:    "ed25519",
	hmacKey: []byte("ed25519 seed"),
}

func (c *ed25519Curve) Name() string { return c.name }

func (c *ed25519Curve) MasterFromSeed(seed []byte) (key, chainCode [32]byte, err error) {
	i := hmacSHA512(c.hmacKey, seed)
	copy(key[:], i[:32])
	copy(chainCode[:], i[32:])
	return key, chainCode, nil
}

func (c *ed25519Curve) DeriveChild(key, chainCode [32]byte, index uint32) (childKey, childChainCode [32]byte, err error) {
	if !IsHardened(index) {
		return childKey, childChainCode, hderr.ErrNormalDerivationOnEd25519
	}

	data := childData(true, key, nil, index)
	i := hmacSHA512(chainCode[:], data)
	copy(childKey[:], i[:32])
	copy(childChainCode[:], i[32:])
	return childKey, childChainCode, nil
}

func (c *ed25519Curve) PublicKey(priv [32]byte) (PublicKey, error) {
	expanded := stded25519.NewKeyFromSeed(priv[:])
	pub := expanded.Public().(stded25519.PublicKey)
	return PublicKey{Raw: append([]byte(nil), pub...)}, nil
}

func (c *ed25519Curve) Sign(priv [32]byte, msg []byte) ([]byte, error) {
	expanded := stded25519.NewKeyFromSeed(priv[:])
	return stded25519.Sign(expanded, msg), nil
}

func (c *ed25519Curve) Verify(pub PublicKey, msg, sig []byte) bool {
	if len(pub.Raw) != Ed25519PubKeySize || len(sig) != Ed25519SigSize {
		return false
	}
	return stded25519.Verify(stded25519.PublicKey(pub.Raw), msg, sig)
}
