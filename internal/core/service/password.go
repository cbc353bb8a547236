package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinicore/user-system/internal/core/domain"
)

// PasswordHasher wraps bcrypt with a cost factor fixed at construction.
// The bcrypt output encodes algorithm, cost, and salt alongside the digest,
// so verification needs no state beyond the stored hash itself.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher validates the configured cost factor. An out-of-range
// cost is a configuration error and fatal at startup, not a per-request
// condition.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &PasswordHasher{cost: cost}, nil
}

// Hash applies a salted one-way transform to the plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: password is required", domain.ErrBadRequest)
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(out), nil
}

// Verify reports whether plaintext matches the stored hash. bcrypt's
// comparison is constant time with respect to the digest.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
