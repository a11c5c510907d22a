// Package secure provides small helpers for handling secret material in
// memory: wiping buffers after use and comparing secrets in constant time.
package secure

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"runtime"
)

// Zero overwrites b with zero bytes. The KeepAlive prevents the compiler
// from eliding the wipe of a buffer that is about to become unreachable.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// RandomOverwrite fills b with random bytes and then zeroes it, for callers
// that want the plaintext gone even if the zero pass is partially observable.
func RandomOverwrite(b []byte) error {
	if _, err := rand.Read(b); err != nil {
		return fmt.Errorf("failed to overwrite with random data: %w", err)
	}
	Zero(b)
	return nil
}

// ConstantTimeCompare reports whether x and y are equal without leaking the
// position of the first differing byte. Inputs of different lengths compare
// unequal immediately.
func ConstantTimeCompare(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}

// RandomBytes returns size cryptographically secure random bytes.
func RandomBytes(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid length: %d", size)
	}
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		Zero(b)
		return nil, fmt.Errorf("failed to generate secure random bytes: %w", err)
	}
	return b, nil
}
