// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // The user's login email. Empty when the account has no email credential.
	Username     string     // The user's unique handle.
	FullName     string     // The user's display name.
	PasswordHash string     // Stores the bcrypt-hashed password. Empty for accounts without a password credential.
	Role         Role       // The user's role, controlling dashboard access level.
	Status       Status     // The account lifecycle status.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
	DeletedAt    *time.Time // Set when the account has been soft deleted. Nil otherwise.
}

// IsActive reports whether the account may authenticate. A soft-deleted
// account is never active, regardless of its status column.
func (u *User) IsActive() bool {
	return u.Status == StatusActive && u.DeletedAt == nil
}

// HasPassword reports whether the account carries a password credential.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
