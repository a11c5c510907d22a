package shamir

import "github.com/wavect/shamir-secret-sharing/pkg/gf256"

// point is a single (x, y) sample of a share polynomial.
type point struct {
	x, y byte
}

// evaluate computes the polynomial with the given coefficients at x using
// Horner's method. coefficients[0] is the constant term.
func evaluate(coefficients []byte, x byte) byte {
	y := coefficients[len(coefficients)-1]
	for i := len(coefficients) - 2; i >= 0; i-- {
		y = gf256.Add(gf256.Mul(y, x), coefficients[i])
	}
	return y
}

// interpolateAtZero recovers f(0) from the sample points by Lagrange
// interpolation. In characteristic 2 the basis numerator terms (0 - x_m)
// are simply x_m. Division is safe: validated points have distinct nonzero
// x-coordinates, so every denominator factor is nonzero.
func interpolateAtZero(points []point) byte {
	var secret byte
	for j, pj := range points {
		numerator := byte(1)
		denominator := byte(1)
		for m, pm := range points {
			if m == j {
				continue
			}
			numerator = gf256.Mul(numerator, pm.x)
			denominator = gf256.Mul(denominator, gf256.Sub(pm.x, pj.x))
		}
		basis := gf256.Div(numerator, denominator)
		secret = gf256.Add(secret, gf256.Mul(pj.y, basis))
	}
	return secret
}
