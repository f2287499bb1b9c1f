// Package user holds the account entity and its partial-update shape.
package user

import (
	"strings"
	"unicode/utf8"

	"github.com/arimodu/shopper/internal/domain"
)

// Field limits enforced before anything reaches storage.
const (
	MaxNameLength = 128
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// User is a registered account. Name is unique across the service.
type User struct {
	ID           string
	Name         string
	PasswordHash string
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Name         *string
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.PasswordHash == nil
}

// Apply merges the present fields of p into u.
func (p Patch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
}

// ValidateName checks a display name for emptiness and length.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return domain.NewValidationError("name", "must be at most 128 characters")
	}
	return nil
}

// ValidatePassword checks a plaintext password before hashing.
func ValidatePassword(password string) error {
	if password == "" {
		return domain.NewValidationError("password", domain.MsgRequired)
	}
	if len(password) > MaxPasswordBytes {
		return domain.NewValidationError("password", "must be at most 72 bytes")
	}
	return nil
}
