// Package password wraps bcrypt hashing and verification of user
// passwords. Plaintext passwords never leave this package's callers in
// stored or logged form.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and checks salted bcrypt digests at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost.
func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. Failures here are internal
// library errors and fatal to the calling request.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A mismatch
// is a normal false result, never an error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
