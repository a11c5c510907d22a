package hdkey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMasterKey(t *testing.T) {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i)
	}

	key, err := NewMasterKey(seed)
	require.NoError(t, err)
	assert.Equal(t, "m", key.Path())
	assert.NotEmpty(t, key.PublicKeyHex())
	assert.NotEmpty(t, key.ExtendedPrivateKey())
	assert.NotEmpty(t, key.ExtendedPublicKey())
}

func TestNewMasterKeyShortSeed(t *testing.T) {
	_, err := NewMasterKey(make([]byte, 15))
	assert.Error(t, err)
}

func TestBIP32TestVector1(t *testing.T) {
	// Test vector 1 from the BIP32 specification, seed 000102...0f.
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, err := NewMasterKey(seed)
	require.NoError(t, err)

	assert.Equal(t,
		"xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi",
		master.ExtendedPrivateKey())
	assert.Equal(t,
		"xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
		master.ExtendedPublicKey())

	child, err := master.DerivePath("m/0'")
	require.NoError(t, err)
	assert.Equal(t,
		"xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw",
		child.ExtendedPublicKey())
}

func TestDerivePath(t *testing.T) {
	seed := make([]byte, 32)
	master, err := NewMasterKey(seed)
	require.NoError(t, err)

	tests := []struct {
		path      string
		wantError bool
	}{
		{"m/44'/60'/0'/0/0", false},
		{"m/44h/0h/0h/0/0", false},
		{"m/0", false},
		{"m", false},
		{"44'/60'", true},
		{"m/abc", true},
		{"m/-1", true},
	}

	for _, tt := range tests {
		derived, err := master.DerivePath(tt.path)
		if tt.wantError {
			assert.Error(t, err, "path %q", tt.path)
			continue
		}
		require.NoError(t, err, "path %q", tt.path)
		assert.Equal(t, tt.path, derived.Path())
		assert.NotEmpty(t, derived.PublicKeyHex())
	}
}

func TestHardenedMarkersEquivalent(t *testing.T) {
	seed := make([]byte, 32)
	master, err := NewMasterKey(seed)
	require.NoError(t, err)

	apostrophe, err := master.DerivePath("m/44'/0'")
	require.NoError(t, err)
	letter, err := master.DerivePath("m/44h/0h")
	require.NoError(t, err)

	assert.Equal(t, apostrophe.ExtendedPublicKey(), letter.ExtendedPublicKey())
}
