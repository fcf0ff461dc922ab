package curve

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"
)

// NIST P-256 has no third-party implementation anywhere in the retrieved
// pack (decred's secp256k1 and edwards packages, and btcec, only cover
// their own named curves); the one other_examples reference file that
// derives HD keys on P-256 (IoFinnet's internal/hd/derive.go) reaches for
// the same stdlib crypto/elliptic + crypto/ecdsa pairing used here.

type nistP256Curve struct {
	curve elliptic.Curve
	group *weierstrassGroup
}

// NistP256 is the singleton CurveOps implementation for NIST P-256.
var NistP256 Curve = newNistP256()

func newNistP256() *nistP256Curve {
	c := &nistP256Curve{curve: elliptic.P256()}
	c.group = &weierstrassGroup{
		name:                     "nist256p1",
		hmacKey:                  []byte("Nist256p1 seed"),
		order:                    c.curve.Params().N,
		scalarBaseMultCompressed: c.scalarBaseMultCompressed,
	}
	return c
}

func (c *nistP256Curve) Name() string { return c.group.name }

func (c *nistP256Curve) scalarBaseMultCompressed(scalar *big.Int) ([CompressedPubKeySize]byte, error) {
	var out [CompressedPubKeySize]byte
	x, y := c.curve.ScalarBaseMult(scalarToBytesSlice(scalar))
	compressed := serializeCompressedPoint(x, y)
	copy(out[:], compressed)
	return out, nil
}

func scalarToBytesSlice(s *big.Int) []byte {
	b := scalarToBytes(s)
	return b[:]
}

func serializeCompressedPoint(x, y *big.Int) []byte {
	out := make([]byte, CompressedPubKeySize)
	if y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xBytes := x.Bytes()
	copy(out[CompressedPubKeySize-len(xBytes):], xBytes)
	return out
}

func (c *nistP256Curve) MasterFromSeed(seed []byte) (key, chainCode [32]byte, err error) {
	return c.group.masterFromSeed(seed)
}

func (c *nistP256Curve) DeriveChild(key, chainCode [32]byte, index uint32) (childKey, childChainCode [32]byte, err error) {
	return c.group.deriveChild(key, chainCode, index)
}

func (c *nistP256Curve) PublicKey(priv [32]byte) (PublicKey, error) {
	x, y := c.curve.ScalarBaseMult(priv[:])
	return PublicKey{
		Compressed:   serializeCompressedPoint(x, y),
		Uncompressed: elliptic.Marshal(c.curve, x, y),
	}, nil
}

func (c *nistP256Curve) privateKey(priv [32]byte) *ecdsa.PrivateKey {
	key := new(ecdsa.PrivateKey)
	key.Curve = c.curve
	key.D = new(big.Int).SetBytes(priv[:])
	key.X, key.Y = c.curve.ScalarBaseMult(priv[:])
	return key
}

func (c *nistP256Curve) Sign(priv [32]byte, msg []byte) ([]byte, error) {
	hash := sha256.Sum256(msg)
	r, s, err := ecdsa.Sign(rand.Reader, c.privateKey(priv), hash[:])
	if err != nil {
		return nil, err
	}
	sig := make([]byte, ECDSASigSize)
	rBytes, sBytes := r.Bytes(), s.Bytes()
	copy(sig[32-len(rBytes):32], rBytes)
	copy(sig[64-len(sBytes):64], sBytes)
	return sig, nil
}

func (c *nistP256Curve) Verify(pub PublicKey, msg, sig []byte) bool {
	if len(sig) != ECDSASigSize || len(pub.Uncompressed) != UncompressedPubKeySize {
		return false
	}
	x, y := elliptic.Unmarshal(c.curve, pub.Uncompressed)
	if x == nil {
		return false
	}
	pk := &ecdsa.PublicKey{Curve: c.curve, X: x, Y: y}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	hash := sha256.Sum256(msg)
	return ecdsa.Verify(pk, hash[:], r, s)
}
