package curve_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdkit/curve"
)

func mustDecode(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	var out [32]byte
	copy(out[:], b)
	return out
}

// TestMasterFromSeedVectors exercises spec.md §8 scenarios 1 and 3: the
// standard SLIP-0010 master-key test vectors for secp256k1 and Ed25519.
func TestMasterFromSeedVectors(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	t.Run("secp256k1", func(t *testing.T) {
		key, chainCode, err := curve.Secp256k1.MasterFromSeed(seed)
		require.NoError(t, err)
		require.Equal(t, mustDecode(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"), key)
		require.Equal(t, mustDecode(t, "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"), chainCode)
	})

	t.Run("ed25519", func(t *testing.T) {
		key, chainCode, err := curve.Ed25519.MasterFromSeed(seed)
		require.NoError(t, err)
		require.Equal(t, mustDecode(t, "2b4be7f19ee27bbf30c667b642d5f4aa69fd169872f8fc3059c08ebae2eb19e7"), key)
		require.Equal(t, mustDecode(t, "90046a93de5380a72b5e45010748567d5ea02bbf6522f979e05c0d8d8ca9fffb"), chainCode)
	})

	t.Run("deterministic", func(t *testing.T) {
		k1, c1, err := curve.NistP256.MasterFromSeed(seed)
		require.NoError(t, err)
		k2, c2, err := curve.NistP256.MasterFromSeed(seed)
		require.NoError(t, err)
		require.Equal(t, k1, k2)
		require.Equal(t, c1, c2)
	})
}

// TestDeriveChildVectors exercises spec.md §8 scenarios 2 and 4: m/0' for
// secp256k1 and Ed25519.
func TestDeriveChildVectors(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	t.Run("secp256k1", func(t *testing.T) {
		key, chainCode, err := curve.Secp256k1.MasterFromSeed(seed)
		require.NoError(t, err)

		childKey, childChainCode, err := curve.Secp256k1.DeriveChild(key, chainCode, curve.HardenedOffset+0)
		require.NoError(t, err)
		require.Equal(t, mustDecode(t, "edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea"), childKey)
		require.Equal(t, mustDecode(t, "47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141"), childChainCode)
	})

	t.Run("ed25519", func(t *testing.T) {
		key, chainCode, err := curve.Ed25519.MasterFromSeed(seed)
		require.NoError(t, err)

		childKey, _, err := curve.Ed25519.DeriveChild(key, chainCode, curve.HardenedOffset+0)
		require.NoError(t, err)
		require.Equal(t, mustDecode(t, "68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3"), childKey)
	})

	t.Run("ed25519 rejects normal derivation at any position", func(t *testing.T) {
		key, chainCode, err := curve.Ed25519.MasterFromSeed(seed)
		require.NoError(t, err)

		for _, idx := range []uint32{0, 1, curve.HardenedOffset - 1} {
			_, _, err := curve.Ed25519.DeriveChild(key, chainCode, idx)
			require.Error(t, err)
		}
	})
}

func TestSecp256k1PrivateKeyInRange(t *testing.T) {
	seeds := [][]byte{
		mustHex(t, "000102030405060708090a0b0c0d0e0f"),
		mustHex(t, "fffcf9f6f3f0edeae7e4e1dedbd8d5d2"),
	}
	for _, seed := range seeds {
		key, chainCode, err := curve.Secp256k1.MasterFromSeed(seed)
		require.NoError(t, err)
		require.NotEqual(t, [32]byte{}, key)

		for _, idx := range []uint32{0, 1, curve.HardenedOffset, curve.HardenedOffset + 5} {
			childKey, _, err := curve.Secp256k1.DeriveChild(key, chainCode, idx)
			require.NoError(t, err)
			require.NotEqual(t, [32]byte{}, childKey)
		}
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSecp256k1SignVerifyRoundTrip(t *testing.T) {
	seed := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	key, _, err := curve.Secp256k1.MasterFromSeed(seed)
	require.NoError(t, err)

	pub, err := curve.Secp256k1.PublicKey(key)
	require.NoError(t, err)
	require.Len(t, pub.Compressed, curve.CompressedPubKeySize)
	require.Len(t, pub.Uncompressed, curve.UncompressedPubKeySize)
	require.Contains(t, []byte{0x02, 0x03}, pub.Compressed[0])
	require.Equal(t, byte(0x04), pub.Uncompressed[0])

	msg := []byte("hdkit signing fixture")
	sig, err := curve.Secp256k1.Sign(key, msg)
	require.NoError(t, err)
	require.Len(t, sig, curve.ECDSASigSize)
	require.True(t, curve.Secp256k1.Verify(pub, msg, sig))

	recSig, err := curve.Secp256k1Recoverable.SignRecoverable(key, msg)
	require.NoError(t, err)
	require.True(t, recSig[curve.RecoverableSigSize-1] == 0 || recSig[curve.RecoverableSigSize-1] == 1)
	require.True(t, curve.Secp256k1.Verify(pub, msg, recSig[:curve.ECDSASigSize]))
}

func TestEd25519SignVerifyRoundTrip(t *testing.T) {
	seed := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	key, _, err := curve.Ed25519.MasterFromSeed(seed)
	require.NoError(t, err)

	pub, err := curve.Ed25519.PublicKey(key)
	require.NoError(t, err)
	require.Len(t, pub.Raw, curve.Ed25519PubKeySize)

	msg := []byte("hdkit signing fixture")
	sig, err := curve.Ed25519.Sign(key, msg)
	require.NoError(t, err)
	require.Len(t, sig, curve.Ed25519SigSize)
	require.True(t, curve.Ed25519.Verify(pub, msg, sig))
	require.False(t, curve.Ed25519.Verify(pub, []byte("tampered"), sig))
}

func TestNistP256SignVerifyRoundTrip(t *testing.T) {
	seed := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	key, _, err := curve.NistP256.MasterFromSeed(seed)
	require.NoError(t, err)

	pub, err := curve.NistP256.PublicKey(key)
	require.NoError(t, err)
	require.Len(t, pub.Compressed, curve.CompressedPubKeySize)
	require.Len(t, pub.Uncompressed, curve.UncompressedPubKeySize)

	msg := []byte("hdkit signing fixture")
	sig, err := curve.NistP256.Sign(key, msg)
	require.NoError(t, err)
	require.Len(t, sig, curve.ECDSASigSize)
	require.True(t, curve.NistP256.Verify(pub, msg, sig))
}
