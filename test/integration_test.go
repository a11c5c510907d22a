package test

import (
	"bytes"
	"testing"

	vaultshamir "github.com/hashicorp/vault/shamir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavect/shamir-secret-sharing/pkg/hdkey"
	"github.com/wavect/shamir-secret-sharing/pkg/mnemonic"
	"github.com/wavect/shamir-secret-sharing/pkg/secure"
	"github.com/wavect/shamir-secret-sharing/pkg/shamir"
)

func TestFullWorkflow(t *testing.T) {
	m, err := mnemonic.New(256)
	require.NoError(t, err)

	originalWords := m.Words()

	entropy, err := m.Entropy()
	require.NoError(t, err)
	defer secure.Zero(entropy)

	shares, err := shamir.Split(entropy, 5, 3)
	require.NoError(t, err)
	assert.Len(t, shares, 5)

	reconstructed, err := shamir.Combine(shares[:3])
	require.NoError(t, err)
	assert.Equal(t, entropy, reconstructed)

	recovered, err := mnemonic.FromEntropy(reconstructed)
	require.NoError(t, err)
	assert.Equal(t, originalWords, recovered.Words())

	seed := recovered.Seed("test-passphrase")
	defer secure.Zero(seed)

	master, err := hdkey.NewMasterKey(seed)
	require.NoError(t, err)

	derived, err := master.DerivePath("m/44'/60'/0'/0/0")
	require.NoError(t, err)
	assert.NotEmpty(t, derived.PublicKeyHex())
	assert.NotEmpty(t, derived.ExtendedPublicKey())
}

func TestDifferentShareCombinations(t *testing.T) {
	secret := []byte("test secret for multiple combinations")

	shares, err := shamir.Split(secret, 7, 4)
	require.NoError(t, err)

	combinations := [][]int{
		{0, 1, 2, 3},
		{3, 4, 5, 6},
		{0, 2, 4, 6},
		{1, 3, 5, 6},
		{6, 4, 1, 0},
	}

	for _, combo := range combinations {
		subset := make([][]byte, len(combo))
		for i, idx := range combo {
			subset[i] = shares[idx]
		}

		reconstructed, err := shamir.Combine(subset)
		require.NoError(t, err)
		assert.Equal(t, secret, reconstructed, "combination %v", combo)
	}
}

// Both implementations work over GF(2^8) with the AES reduction polynomial
// and the same wire format (y-vector with a trailing x-coordinate), so
// shares split by one must combine with the other.
func TestVaultInteroperability(t *testing.T) {
	secret := []byte("cross-implementation compatibility")

	t.Run("Vault shares combine here", func(t *testing.T) {
		vaultShares, err := vaultshamir.Split(secret, 5, 3)
		require.NoError(t, err)

		reconstructed, err := shamir.Combine(vaultShares[:3])
		require.NoError(t, err)
		assert.Equal(t, secret, reconstructed)
	})

	t.Run("Our shares combine in Vault", func(t *testing.T) {
		shares, err := shamir.Split(secret, 5, 3)
		require.NoError(t, err)

		reconstructed, err := vaultshamir.Combine(shares[:3])
		require.NoError(t, err)
		assert.Equal(t, secret, reconstructed)
	})

	t.Run("Mixed share sets combine", func(t *testing.T) {
		// Shares from independent split calls never mix, but shares of one
		// set remain interchangeable across implementations.
		shares, err := shamir.Split(secret, 4, 2)
		require.NoError(t, err)

		ours, err := shamir.Combine([][]byte{shares[1], shares[3]})
		require.NoError(t, err)
		theirs, err := vaultshamir.Combine([][]byte{shares[0], shares[2]})
		require.NoError(t, err)
		assert.Equal(t, ours, theirs)
	})
}

func TestLargeSecretRoundTrip(t *testing.T) {
	secret := bytes.Repeat([]byte{0x00, 0xFF, 0x42, 0x7F}, 1024)

	shares, err := shamir.Split(secret, 3, 2)
	require.NoError(t, err)

	for _, share := range shares {
		assert.Len(t, share, len(secret)+1)
	}

	reconstructed, err := shamir.Combine(shares[1:])
	require.NoError(t, err)
	assert.Equal(t, secret, reconstructed)
}
