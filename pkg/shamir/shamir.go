// Package shamir implements Shamir's threshold secret sharing over GF(2^8).
//
// A secret is split into parts shares such that any threshold of them
// reconstruct it exactly, while threshold-1 or fewer reveal nothing. Each
// secret byte gets its own random polynomial of degree threshold-1 whose
// constant term is that byte; a share holds the polynomial evaluations at the
// share's x-coordinate, followed by the x-coordinate itself as the trailing
// byte. A share is therefore exactly len(secret)+1 raw bytes with no framing.
//
// Combine cannot tell whether it was given enough shares: fewer than
// threshold shares, or tampered shares, yield a wrong secret rather than an
// error. Callers needing integrity must layer it on top.
package shamir

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/wavect/shamir-secret-sharing/pkg/secure"
)

const (
	// MinParts is the smallest number of shares a secret can be split into.
	MinParts = 2
	// MaxParts is the largest number of shares; x-coordinates are nonzero
	// bytes, so at most 255 distinct shares exist.
	MaxParts = 255
)

var (
	// ErrEmptySecret is returned when the secret to split has no bytes.
	ErrEmptySecret = errors.New("secret cannot be empty")
	// ErrInvalidParts is returned when the requested share count is outside [2,255].
	ErrInvalidParts = errors.New("parts must be between 2 and 255")
	// ErrInvalidThreshold is returned when the threshold is outside [2,255].
	ErrInvalidThreshold = errors.New("threshold must be between 2 and 255")
	// ErrThresholdExceedsParts is returned when threshold > parts.
	ErrThresholdExceedsParts = errors.New("threshold cannot exceed parts")
	// ErrTooFewShares is returned when combine receives fewer than 2 shares.
	ErrTooFewShares = errors.New("at least 2 shares are required")
	// ErrTooManyShares is returned when combine receives more than 255 shares.
	ErrTooManyShares = errors.New("cannot combine more than 255 shares")
	// ErrShareTooShort is returned for a share smaller than 2 bytes.
	ErrShareTooShort = errors.New("share must be at least 2 bytes")
	// ErrShareLengthMismatch is returned when shares differ in length.
	ErrShareLengthMismatch = errors.New("all shares must have the same length")
	// ErrDuplicateShare is returned when two shares carry the same x-coordinate.
	ErrDuplicateShare = errors.New("duplicate share x-coordinate")
	// ErrRandomnessUnavailable is returned when the randomness source cannot
	// supply polynomial coefficients.
	ErrRandomnessUnavailable = errors.New("randomness source unavailable")
)

// Split divides secret into parts shares, any threshold of which reconstruct
// it. Polynomial coefficients are drawn from crypto/rand.
func Split(secret []byte, parts, threshold int) ([][]byte, error) {
	return SplitFromReader(rand.Reader, secret, parts, threshold)
}

// SplitFromReader splits secret as Split does, drawing polynomial
// coefficients from r instead of crypto/rand. The caller must ensure r is
// cryptographically secure; deterministic readers are only appropriate in
// tests.
func SplitFromReader(r io.Reader, secret []byte, parts, threshold int) ([][]byte, error) {
	if err := validateSplit(secret, parts, threshold); err != nil {
		return nil, err
	}

	shares := make([][]byte, parts)
	for j := range shares {
		shares[j] = make([]byte, len(secret)+1)
		// x-coordinates 1..parts: distinct and nonzero by construction. Any
		// assignment of distinct nonzero field elements would do equally.
		shares[j][len(secret)] = byte(j + 1)
	}

	// One fresh polynomial per secret byte; the coefficient buffer is
	// refilled each iteration and wiped before returning.
	coefficients := make([]byte, threshold)
	defer secure.Zero(coefficients)

	for i, b := range secret {
		coefficients[0] = b
		if _, err := io.ReadFull(r, coefficients[1:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
		}

		for j := range shares {
			shares[j][i] = evaluate(coefficients, byte(j+1))
		}
	}

	return shares, nil
}

// Combine reconstructs the secret from the given shares by Lagrange
// interpolation at x=0, independently per byte position. Supplying more
// shares than the split threshold yields the same result; supplying fewer
// yields a deterministic but meaningless value, not an error.
func Combine(shares [][]byte) ([]byte, error) {
	if err := ValidateShares(shares); err != nil {
		return nil, err
	}

	secretLen := len(shares[0]) - 1
	points := make([]point, len(shares))
	secret := make([]byte, secretLen)

	for i := range secret {
		for j, share := range shares {
			points[j] = point{x: share[secretLen], y: share[i]}
		}
		secret[i] = interpolateAtZero(points)
	}

	return secret, nil
}

// ValidateShares checks the structural preconditions Combine requires:
// 2..255 shares, each at least 2 bytes, all the same length, with pairwise
// distinct x-coordinates. It performs no field arithmetic.
func ValidateShares(shares [][]byte) error {
	if len(shares) < MinParts {
		return fmt.Errorf("%w, got %d", ErrTooFewShares, len(shares))
	}
	if len(shares) > MaxParts {
		return fmt.Errorf("%w, got %d", ErrTooManyShares, len(shares))
	}

	length := len(shares[0])
	if length < 2 {
		return fmt.Errorf("%w, got %d bytes", ErrShareTooShort, length)
	}

	seen := make(map[byte]bool, len(shares))
	for j, share := range shares {
		if len(share) != length {
			return fmt.Errorf("%w: share %d has %d bytes, expected %d",
				ErrShareLengthMismatch, j, len(share), length)
		}
		x := share[len(share)-1]
		if seen[x] {
			return fmt.Errorf("%w: %d", ErrDuplicateShare, x)
		}
		seen[x] = true
	}

	return nil
}

func validateSplit(secret []byte, parts, threshold int) error {
	if len(secret) == 0 {
		return ErrEmptySecret
	}
	if parts < MinParts || parts > MaxParts {
		return fmt.Errorf("%w, got %d", ErrInvalidParts, parts)
	}
	if threshold < MinParts || threshold > MaxParts {
		return fmt.Errorf("%w, got %d", ErrInvalidThreshold, threshold)
	}
	if threshold > parts {
		return fmt.Errorf("%w: threshold %d, parts %d", ErrThresholdExceedsParts, threshold, parts)
	}
	return nil
}
