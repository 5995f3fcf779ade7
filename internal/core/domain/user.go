package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const (
	RoleUser      = "user"
	RoleGuide     = "guide"
	RoleLeadGuide = "lead-guide"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role belongs to the closed role enum.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleGuide, RoleLeadGuide, RoleAdmin:
		return true
	}
	return false
}

// User models an account in the system. The password is held only as a bcrypt
// hash; Active=false is a soft delete and such users are excluded from all
// default reads.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Photo             string    `json:"photo,omitempty"`
	PasswordHash      string    `json:"-"`
	Role              string    `json:"role"`
	Active            bool      `json:"-"`
	PasswordChangedAt time.Time `json:"-"`
	ResetTokenHash    string    `json:"-"`
	ResetTokenExpires time.Time `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ChangedPasswordAfter reports whether the password was changed after a token
// issued at issuedAt. Comparison is at second precision, matching the
// resolution of JWT timestamps.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt.IsZero() {
		return false
	}
	return issuedAt.Unix() < u.PasswordChangedAt.Unix()
}

// HasResetTicket reports whether a password reset ticket is pending.
func (u *User) HasResetTicket() bool {
	return u.ResetTokenHash != "" && !u.ResetTokenExpires.IsZero()
}

// HashResetToken one-way hashes a raw password reset token. Only the hash is
// ever persisted; the raw token travels to the user by email.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
