// Package hdkey derives BIP32 hierarchical deterministic keys from a
// reconstructed seed. It sits entirely outside the sharing scheme: shares
// are combined first, the resulting seed is fed in here.
package hdkey

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"
)

const hardenedOffset = uint32(0x80000000)

// HDKey is a derived key together with the path it was derived along.
type HDKey struct {
	key  *bip32.Key
	path string
}

// NewMasterKey builds the BIP32 master key from a seed of at least 16 bytes.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) < 16 {
		return nil, fmt.Errorf("seed must be at least 16 bytes, got %d", len(seed))
	}

	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	return &HDKey{key: master, path: "m"}, nil
}

// DerivePath derives the key at a path like "m/44'/60'/0'/0/0". Both ' and h
// mark hardened segments.
func (h *HDKey) DerivePath(path string) (*HDKey, error) {
	path = strings.TrimSpace(path)
	if path != "m" && !strings.HasPrefix(path, "m/") && !strings.HasPrefix(path, "M/") {
		return nil, fmt.Errorf("path must start with 'm/' or 'M/', got %q", path)
	}

	current := h.key
	for _, segment := range strings.Split(path, "/")[1:] {
		if segment == "" {
			continue
		}

		hardened := strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h")
		if hardened {
			segment = strings.TrimSuffix(strings.TrimSuffix(segment, "'"), "h")
		}

		index, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid path segment %q: %w", segment, err)
		}

		childIndex := uint32(index)
		if hardened {
			childIndex += hardenedOffset
		}

		current, err = current.NewChildKey(childIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child %q: %w", segment, err)
		}
	}

	return &HDKey{key: current, path: path}, nil
}

// Path returns the derivation path of the key.
func (h *HDKey) Path() string {
	return h.path
}

// PublicKeyHex returns the compressed public key as hex.
func (h *HDKey) PublicKeyHex() string {
	return hex.EncodeToString(h.key.PublicKey().Key)
}

// ExtendedPrivateKey returns the xprv serialization.
func (h *HDKey) ExtendedPrivateKey() string {
	return h.key.String()
}

// ExtendedPublicKey returns the xpub serialization.
func (h *HDKey) ExtendedPublicKey() string {
	return h.key.PublicKey().String()
}
