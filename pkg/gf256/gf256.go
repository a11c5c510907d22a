// Package gf256 implements arithmetic over the finite field GF(2^8) with the
// AES (Rijndael) reduction polynomial x^8 + x^4 + x^3 + x + 1 (0x11B).
//
// Addition and subtraction are both bitwise XOR. Multiplication and division
// go through logarithm/exponent lookup tables built once at process start;
// the tables are never written after initialization, so every operation is
// safe for concurrent use.
package gf256

// reductionPoly is the Rijndael irreducible polynomial x^8 + x^4 + x^3 + x + 1.
const reductionPoly = 0x11B

// generator is 0x03, a primitive element of the multiplicative group.
// Note that 0x02 is not primitive in this field (its order is 51).
const generator = 0x03

// tables holds the exp/log lookups for the multiplicative group. The exp
// table carries a second cycle so that log[a]+log[b] never needs a modulo.
type tables struct {
	exp [510]byte
	log [256]byte
}

var tbl = buildTables()

func buildTables() *tables {
	t := &tables{}

	x := uint16(1)
	for i := 0; i < 255; i++ {
		t.exp[i] = byte(x)
		t.exp[i+255] = byte(x)
		t.log[x] = byte(i)

		// Multiply by the generator 3: x*3 = (x<<1) ^ x, reduced mod 0x11B.
		x = (x << 1) ^ x
		if x >= 0x100 {
			x ^= reductionPoly
		}
	}

	return t
}

// Add returns a + b in GF(2^8).
func Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a - b in GF(2^8). Subtraction equals addition in a field of
// characteristic 2.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b in GF(2^8).
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return tbl.exp[int(tbl.log[a])+int(tbl.log[b])]
}

// Div returns a / b in GF(2^8). It panics when b is 0; callers are expected
// to have validated divisors before reaching field arithmetic.
func Div(a, b byte) byte {
	if b == 0 {
		panic("gf256: division by zero")
	}
	if a == 0 {
		return 0
	}
	return tbl.exp[int(tbl.log[a])-int(tbl.log[b])+255]
}

// Inverse returns the multiplicative inverse of a, or 0 for a == 0 (which
// has no inverse).
func Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	return tbl.exp[255-int(tbl.log[a])]
}
