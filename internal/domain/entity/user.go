// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns bookmarks and signs in with email and password.
type User struct {
	ID           uuid.UUID // Stable identifier assigned when the account is created.
	Email        string    // Sign-in key, unique across users and compared as stored.
	PasswordHash string    // Encoded digest of the password. The plaintext is never kept.
	FirstName    *string   // Optional given name, editable through the profile.
	LastName     *string   // Optional family name, editable through the profile.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last profile modification.
}

// UserChanges lists the profile fields an edit may touch. A nil field is left
// unchanged. The password hash is deliberately absent.
type UserChanges struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the edit would change nothing.
func (c UserChanges) IsEmpty() bool {
	return c.Email == nil && c.FirstName == nil && c.LastName == nil
}

// Apply copies the requested changes onto u.
func (c UserChanges) Apply(u *User) {
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.FirstName != nil {
		u.FirstName = c.FirstName
	}
	if c.LastName != nil {
		u.LastName = c.LastName
	}
}
