// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/ports"
)

var _ ports.PasswordHasher = (*Hasher)(nil)

// Hasher is a bcrypt ports.PasswordHasher with a fixed cost.
type Hasher struct {
	cost int
}

// New returns a Hasher. A cost outside bcrypt's range falls back to
// bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Compare returns domain.ErrUnauthorized when password does not match hash.
func (h *Hasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fmt.Errorf("password mismatch: %w", domain.ErrUnauthorized)
	default:
		return fmt.Errorf("compare password: %w", err)
	}
}
