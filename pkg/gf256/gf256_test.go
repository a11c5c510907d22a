package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mulSchoolbook is a bitwise reference multiply, reduced by 0x11B, used to
// cross-check the table-driven implementation.
func mulSchoolbook(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			result ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return result
}

func TestAddSubAreXOR(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x00},
		{0xFF, 0x0F, 0xF0},
		{0x53, 0xCA, 0x99},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Add(tt.a, tt.b))
		assert.Equal(t, tt.want, Sub(tt.a, tt.b))
	}
}

func TestMulMatchesSchoolbook(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := mulSchoolbook(byte(a), byte(b))
			got := Mul(byte(a), byte(b))
			require.Equalf(t, want, got, "Mul(%#02x, %#02x)", a, b)
		}
	}
}

func TestMulKnownValues(t *testing.T) {
	// Classic AES field examples.
	assert.Equal(t, byte(0xC1), Mul(0x57, 0x83))
	assert.Equal(t, byte(0xFE), Mul(0x57, 0x13))
	assert.Equal(t, byte(0x00), Mul(0x00, 0xFF))
	assert.Equal(t, byte(0xFF), Mul(0xFF, 0x01))
}

func TestMulCommutativeAndAssociative(t *testing.T) {
	vals := []byte{0x01, 0x02, 0x03, 0x1B, 0x53, 0x80, 0xCA, 0xFF}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, Mul(a, b), Mul(b, a))
			for _, c := range vals {
				assert.Equal(t, Mul(Mul(a, b), c), Mul(a, Mul(b, c)))
			}
		}
	}
}

func TestDivInvertsMul(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 1; b < 256; b++ {
			product := Mul(byte(a), byte(b))
			require.Equalf(t, byte(a), Div(product, byte(b)), "Div(Mul(%#02x, %#02x), %#02x)", a, b, b)
		}
	}
}

func TestDivZeroNumerator(t *testing.T) {
	for b := 1; b < 256; b++ {
		assert.Equal(t, byte(0), Div(0, byte(b)))
	}
}

func TestDivByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		Div(0x42, 0)
	})
	assert.Panics(t, func() {
		Div(0, 0)
	})
}

func TestInverse(t *testing.T) {
	assert.Equal(t, byte(0), Inverse(0))
	assert.Equal(t, byte(1), Inverse(1))

	for a := 1; a < 256; a++ {
		inv := Inverse(byte(a))
		require.Equalf(t, byte(1), Mul(byte(a), inv), "Inverse(%#02x)", a)
	}
}

func TestGeneratorCoversField(t *testing.T) {
	// The exp table's first cycle must enumerate all 255 nonzero elements,
	// otherwise the chosen generator is not primitive.
	seen := make(map[byte]bool, 255)
	for i := 0; i < 255; i++ {
		seen[tbl.exp[i]] = true
	}
	assert.Len(t, seen, 255)
	assert.False(t, seen[0])
}

func BenchmarkMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Mul(byte(i), byte(i>>8))
	}
}

func BenchmarkDiv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Div(byte(i), byte(i>>8)|1)
	}
}
