package curve

import (
	"crypto/hmac"
	"crypto/sha512"
	"math/big"

	"github.com/not-for-prod/hdkit/hderr"
)

// maxRetries bounds the Weierstrass "try again" loops described in
// spec.md §4.1 and §9. The per-step failure probability is roughly
// 2^-127 on secp256k1 and roughly 2^-32 on P-256, so this bound is never
// exercised in practice; it exists so the
// loop provably terminates instead of recursing or spinning forever.
const maxRetries = 1 << 16

// weierstrassGroup holds the curve-specific parameters the shared
// SLIP-0010 master/child algorithm needs for a Weierstrass curve: the
// HMAC master key, the curve order, and a way to turn a private scalar
// into its 33-byte compressed public point (serP).
type weierstrassGroup struct {
	name                     string
	hmacKey                  []byte
	order                    *big.Int
	scalarBaseMultCompressed func(scalar *big.Int) ([CompressedPubKeySize]byte, error)
}

func hmacSHA512(key, msg []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

func scalarFromBytes(b [32]byte) *big.Int {
	return new(big.Int).SetBytes(b[:])
}

func scalarToBytes(s *big.Int) [32]byte {
	var out [32]byte
	b := s.Bytes()
	copy(out[32-len(b):], b)
	return out
}

func (g *weierstrassGroup) masterFromSeed(seed []byte) (key, chainCode [32]byte, err error) {
	i := hmacSHA512(g.hmacKey, seed)
	for attempt := 0; attempt < maxRetries; attempt++ {
		il, ir := i[:32], i[32:]
		ilScalar := new(big.Int).SetBytes(il)
		if ilScalar.Sign() != 0 && ilScalar.Cmp(g.order) < 0 {
			var k, c [32]byte
			copy(k[:], il)
			copy(c[:], ir)
			return k, c, nil
		}
		i = hmacSHA512(g.hmacKey, i)
	}
	return key, chainCode, hderr.ErrInvalidCurveInput
}

func (g *weierstrassGroup) deriveChild(key, chainCode [32]byte, index uint32) (childKey, childChainCode [32]byte, err error) {
	hardened := IsHardened(index)

	var pub [CompressedPubKeySize]byte
	if !hardened {
		pub, err = g.scalarBaseMultCompressed(scalarFromBytes(key))
		if err != nil {
			return childKey, childChainCode, err
		}
	}

	data := childData(hardened, key, pub[:], index)
	parentScalar := scalarFromBytes(key)

	for attempt := 0; attempt < maxRetries; attempt++ {
		i := hmacSHA512(chainCode[:], data)
		il, ir := i[:32], i[32:]

		ilScalar := new(big.Int).SetBytes(il)
		childScalar := new(big.Int).Add(parentScalar, ilScalar)
		childScalar.Mod(childScalar, g.order)

		if ilScalar.Cmp(g.order) < 0 && childScalar.Sign() != 0 {
			childKey = scalarToBytes(childScalar)
			copy(childChainCode[:], ir)
			return childKey, childChainCode, nil
		}

		// "try again" per SLIP-0010/BIP32: data' = 0x01 || I_R || index_be32.
		next := make([]byte, 0, 1+32+4)
		next = append(next, 0x01)
		next = append(next, ir...)
		idx := be32(index)
		next = append(next, idx[:]...)
		data = next
	}
	return childKey, childChainCode, hderr.ErrInvalidCurveInput
}
