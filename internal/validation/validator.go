// Package validation checks CLI-facing string inputs before they reach the
// sharing core.
package validation

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// ValidateHex checks that input is a non-empty, even-length hex string.
func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}
	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}
	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters")
	}
	return nil
}

// DecodeShare decodes an encoded share, accepting hex first and falling back
// to base64. The decoded share must be at least 2 bytes (one secret byte
// plus the x-coordinate).
func DecodeShare(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, fmt.Errorf("share cannot be empty")
	}

	var data []byte
	if err := ValidateHex(encoded); err == nil {
		decoded, err := hex.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode hex share: %w", err)
		}
		data = decoded
	} else {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("share is neither valid hex nor base64")
		}
		data = decoded
	}

	if len(data) < 2 {
		return nil, fmt.Errorf("share is too short: %d bytes", len(data))
	}

	return data, nil
}

// ValidateSplitParams checks the parts/threshold ranges before prompting the
// user for a secret, so bad flags fail before any interaction.
func ValidateSplitParams(parts, threshold int) error {
	if parts < 2 || parts > 255 {
		return fmt.Errorf("parts must be between 2 and 255 (got %d)", parts)
	}
	if threshold < 2 || threshold > parts {
		return fmt.Errorf("threshold must be between 2 and %d (got %d)", parts, threshold)
	}
	return nil
}

// SanitizeInput normalizes line endings and trims surrounding whitespace
// from pasted multi-line input.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "\n")
}
