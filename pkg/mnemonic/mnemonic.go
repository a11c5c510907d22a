// Package mnemonic wraps BIP39 mnemonic generation and recovery for secrets
// that are wallet seeds. Splitting operates on the raw entropy; after
// combining, the entropy converts back to the original word list.
package mnemonic

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	MinEntropyBits = 128
	MaxEntropyBits = 256
)

// Mnemonic is a validated BIP39 phrase.
type Mnemonic struct {
	words []string
}

// New generates a fresh mnemonic with the given entropy size in bits
// (128..256, multiple of 32).
func New(entropyBits int) (*Mnemonic, error) {
	if entropyBits < MinEntropyBits || entropyBits > MaxEntropyBits {
		return nil, fmt.Errorf("entropy bits must be between %d and %d", MinEntropyBits, MaxEntropyBits)
	}
	if entropyBits%32 != 0 {
		return nil, fmt.Errorf("entropy bits must be a multiple of 32")
	}

	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}

	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	return &Mnemonic{words: strings.Split(words, " ")}, nil
}

// FromWords parses and validates an existing phrase.
func FromWords(words string) (*Mnemonic, error) {
	words = strings.Join(strings.Fields(words), " ")
	if !bip39.IsMnemonicValid(words) {
		return nil, fmt.Errorf("invalid mnemonic phrase")
	}
	return &Mnemonic{words: strings.Split(words, " ")}, nil
}

// FromEntropy rebuilds the phrase for previously extracted entropy, typically
// the output of combining shares.
func FromEntropy(entropy []byte) (*Mnemonic, error) {
	if len(entropy) < 16 || len(entropy) > 32 || len(entropy)%4 != 0 {
		return nil, fmt.Errorf("entropy must be 16-32 bytes and a multiple of 4, got %d", len(entropy))
	}

	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to build mnemonic from entropy: %w", err)
	}

	return &Mnemonic{words: strings.Split(words, " ")}, nil
}

// Words returns the phrase as a single space-separated string.
func (m *Mnemonic) Words() string {
	return strings.Join(m.words, " ")
}

// WordCount returns the number of words in the phrase.
func (m *Mnemonic) WordCount() int {
	return len(m.words)
}

// Entropy returns the raw entropy encoded by the phrase. This is the byte
// sequence to split.
func (m *Mnemonic) Entropy() ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(m.Words())
	if err != nil {
		return nil, fmt.Errorf("failed to extract entropy: %w", err)
	}
	return entropy, nil
}

// Seed derives the BIP39 seed for HD key derivation. The passphrase may be
// empty.
func (m *Mnemonic) Seed(passphrase string) []byte {
	return bip39.NewSeed(m.Words(), passphrase)
}

// EntropyBitsFromWordCount maps a mnemonic length to its entropy size.
func EntropyBitsFromWordCount(count int) (int, error) {
	switch count {
	case 12:
		return 128, nil
	case 15:
		return 160, nil
	case 18:
		return 192, nil
	case 21:
		return 224, nil
	case 24:
		return 256, nil
	default:
		return 0, fmt.Errorf("word count must be 12, 15, 18, 21, or 24, got %d", count)
	}
}
