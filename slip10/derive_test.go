package slip10_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/hdkit/curve"
	"github.com/not-for-prod/hdkit/slip10"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDerivePathStringEndToEnd(t *testing.T) {
	seed := hexBytes(t, "000102030405060708090a0b0c0d0e0f")

	t.Run("secp256k1 master", func(t *testing.T) {
		key, chainCode, err := slip10.DerivePathString(curve.Secp256k1, seed, "m")
		require.NoError(t, err)
		require.Equal(t, hexBytes(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"), key[:])
		require.Equal(t, hexBytes(t, "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"), chainCode[:])
	})

	t.Run("secp256k1 m/0'", func(t *testing.T) {
		key, chainCode, err := slip10.DerivePathString(curve.Secp256k1, seed, "m/0'")
		require.NoError(t, err)
		require.Equal(t, hexBytes(t, "edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea"), key[:])
		require.Equal(t, hexBytes(t, "47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141"), chainCode[:])
	})

	t.Run("ed25519 master", func(t *testing.T) {
		key, chainCode, err := slip10.DerivePathString(curve.Ed25519, seed, "m")
		require.NoError(t, err)
		require.Equal(t, hexBytes(t, "2b4be7f19ee27bbf30c667b642d5f4aa69fd169872f8fc3059c08ebae2eb19e7"), key[:])
		require.Equal(t, hexBytes(t, "90046a93de5380a72b5e45010748567d5ea02bbf6522f979e05c0d8d8ca9fffb"), chainCode[:])
	})

	t.Run("ed25519 m/0'", func(t *testing.T) {
		key, _, err := slip10.DerivePathString(curve.Ed25519, seed, "m/0'")
		require.NoError(t, err)
		require.Equal(t, hexBytes(t, "68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3"), key[:])
	})
}

func TestDerivePathRejectsEmptyPath(t *testing.T) {
	seed := hexBytes(t, "000102030405060708090a0b0c0d0e0f")
	_, _, err := slip10.DerivePath(curve.Secp256k1, seed, nil)
	require.Error(t, err)
}

func TestDerivePathStringAndIndicesAgree(t *testing.T) {
	seed := hexBytes(t, "fffcf9f6f3f0edeae7e4e1dedbd8d5d2")
	path := []uint32{curve.HardenedOffset + 44, curve.HardenedOffset + 0, curve.HardenedOffset + 0, 0, 7}

	byText, ccText, err := slip10.DerivePathString(curve.Secp256k1, seed, "m/44'/0'/0'/0/7")
	require.NoError(t, err)
	byIndices, ccIndices, err := slip10.DerivePath(curve.Secp256k1, seed, path)
	require.NoError(t, err)

	require.Equal(t, byIndices, byText)
	require.Equal(t, ccIndices, ccText)
}

func TestDeriveMasterIsDeterministic(t *testing.T) {
	seed := hexBytes(t, "000102030405060708090a0b0c0d0e0f")
	k1, c1, err := slip10.DeriveMaster(curve.NistP256, seed)
	require.NoError(t, err)
	k2, c2, err := slip10.DeriveMaster(curve.NistP256, seed)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
	require.Equal(t, c1, c2)
}

func TestIntoVariantsMatchRaisingForms(t *testing.T) {
	seed := hexBytes(t, "000102030405060708090a0b0c0d0e0f")

	key, chainCode, err := slip10.DerivePathString(curve.Secp256k1, seed, "m/0'")
	require.NoError(t, err)

	gotKey := make([]byte, 32)
	gotChain := make([]byte, 32)
	ok := slip10.DerivePathStringInto(curve.Secp256k1, seed, "m/0'", gotKey, gotChain)
	require.True(t, ok)
	require.Equal(t, key[:], gotKey)
	require.Equal(t, chainCode[:], gotChain)
}

func TestIntoVariantsRejectBufferSizeMismatch(t *testing.T) {
	seed := hexBytes(t, "000102030405060708090a0b0c0d0e0f")

	require.False(t, slip10.DeriveMasterInto(curve.Secp256k1, seed, make([]byte, 31), make([]byte, 32)))
	require.False(t, slip10.DeriveMasterInto(curve.Secp256k1, seed, make([]byte, 32), make([]byte, 33)))
	require.False(t, slip10.DerivePathInto(curve.Secp256k1, seed, []uint32{0}, make([]byte, 16), make([]byte, 32)))
}
