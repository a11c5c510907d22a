package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHex(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"Valid lowercase", "deadbeef", false},
		{"Valid uppercase", "DEADBEEF", false},
		{"Valid with whitespace", "  cafe  ", false},
		{"Empty", "", true},
		{"Odd length", "abc", true},
		{"Invalid characters", "xyz123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHex(tt.input)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeShare(t *testing.T) {
	hexShare, err := DecodeShare("deadbeef01")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef, 0x01}, hexShare)

	b64Share, err := DecodeShare("3q2+7wE=")
	require.NoError(t, err)
	assert.Equal(t, hexShare, b64Share)

	_, err = DecodeShare("")
	assert.Error(t, err)

	_, err = DecodeShare("!!not-a-share!!")
	assert.Error(t, err)

	// Single decoded byte is below the minimum share size.
	_, err = DecodeShare("ff")
	assert.Error(t, err)
}

func TestValidateSplitParams(t *testing.T) {
	assert.NoError(t, ValidateSplitParams(5, 3))
	assert.NoError(t, ValidateSplitParams(2, 2))
	assert.NoError(t, ValidateSplitParams(255, 255))

	assert.Error(t, ValidateSplitParams(1, 2))
	assert.Error(t, ValidateSplitParams(256, 2))
	assert.Error(t, ValidateSplitParams(5, 1))
	assert.Error(t, ValidateSplitParams(3, 4))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "a\nb", SanitizeInput("  a \r\n b \r"))
	assert.Equal(t, "share", SanitizeInput("\tshare\n"))
}
