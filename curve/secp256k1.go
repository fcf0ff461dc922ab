package curve

import (
	"crypto/sha256"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/not-for-prod/hdkit/hderr"
)

// secp256k1Order is n, the order of the secp256k1 group. Hardcoded rather
// than pulled from a curve-params accessor because the value is a fixed
// constant of the standard and the teacher's own keys.go documents it
// verbatim in a comment.
var secp256k1Order, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

type secp256k1Curve struct {
	group *weierstrassGroup
}

// Secp256k1 is the singleton CurveOps implementation for the Bitcoin/
// Ethereum/Cosmos curve.
var Secp256k1 Curve = newSecp256k1()

// Secp256k1Recoverable exposes Secp256k1's RecoverableSigner capability
// without requiring callers to type-assert Curve.
var Secp256k1Recoverable RecoverableSigner = Secp256k1.(*secp256k1Curve)

func newSecp256k1() *secp256k1Curve {
	c := &secp256k1Curve{}
	c.group = &weierstrassGroup{
		name:                     "secp256k1",
		hmacKey:                  []byte("Bitcoin seed"),
		order:                    secp256k1Order,
		scalarBaseMultCompressed: c.scalarBaseMultCompressed,
	}
	return c
}

func (c *secp256k1Curve) Name() string { return c.group.name }

func (c *secp256k1Curve) scalarBaseMultCompressed(scalar *big.Int) ([CompressedPubKeySize]byte, error) {
	var out [CompressedPubKeySize]byte
	b := scalarToBytes(scalar)
	priv := secp256k1.PrivKeyFromBytes(b[:])
	copy(out[:], priv.PubKey().SerializeCompressed())
	return out, nil
}

func (c *secp256k1Curve) MasterFromSeed(seed []byte) (key, chainCode [32]byte, err error) {
	return c.group.masterFromSeed(seed)
}

func (c *secp256k1Curve) DeriveChild(key, chainCode [32]byte, index uint32) (childKey, childChainCode [32]byte, err error) {
	return c.group.deriveChild(key, chainCode, index)
}

func (c *secp256k1Curve) PublicKey(priv [32]byte) (PublicKey, error) {
	privKey := secp256k1.PrivKeyFromBytes(priv[:])
	pub := privKey.PubKey()
	return PublicKey{
		Compressed:   append([]byte(nil), pub.SerializeCompressed()...),
		Uncompressed: append([]byte(nil), pub.SerializeUncompressed()...),
	}, nil
}

func (c *secp256k1Curve) Sign(priv [32]byte, msg []byte) ([]byte, error) {
	privKey := secp256k1.PrivKeyFromBytes(priv[:])
	hash := sha256.Sum256(msg)
	compact := ecdsa.SignCompact(privKey, hash[:], false)
	sig := make([]byte, ECDSASigSize)
	copy(sig, compact[1:1+ECDSASigSize])
	return sig, nil
}

// SignRecoverable produces a 65-byte r||s||v signature, v in {0,1}, by
// reformatting the library's compact recovery-id-prefixed encoding.
func (c *secp256k1Curve) SignRecoverable(priv [32]byte, msg []byte) ([RecoverableSigSize]byte, error) {
	var out [RecoverableSigSize]byte
	privKey := secp256k1.PrivKeyFromBytes(priv[:])
	hash := sha256.Sum256(msg)
	compact := ecdsa.SignCompact(privKey, hash[:], true)

	header := compact[0]
	var v byte
	switch {
	case header >= 31:
		v = header - 31 // compressed-key encoding, recid offset 27+4
	case header >= 27:
		v = header - 27
	default:
		return out, hderr.ErrInvalidCurveInput
	}

	copy(out[0:ECDSASigSize], compact[1:1+ECDSASigSize])
	out[RecoverableSigSize-1] = v
	return out, nil
}

func (c *secp256k1Curve) Verify(pub PublicKey, msg, sig []byte) bool {
	if len(sig) != ECDSASigSize || len(pub.Compressed) != CompressedPubKeySize {
		return false
	}
	pk, err := secp256k1.ParsePubKey(pub.Compressed)
	if err != nil {
		return false
	}

	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sig[:32]) {
		return false
	}
	if s.SetByteSlice(sig[32:64]) {
		return false
	}

	hash := sha256.Sum256(msg)
	signature := ecdsa.NewSignature(&r, &s)
	return signature.Verify(hash[:], pk)
}
