// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ApiKey represents a long-lived programmatic credential. The raw key is
// shown to the owner exactly once at creation; only its SHA-256 hash and a
// short display prefix are persisted.
type ApiKey struct {
	ID         uuid.UUID  // The unique ID for this key record.
	UserID     uuid.UUID  // Links this key to the User that owns it.
	Name       string     // A human-readable label chosen by the owner.
	KeyPrefix  string     // The first characters of the raw key, kept for display in key listings.
	KeyHash    string     // Stores a SHA-256 hash of the raw key for secure comparison in the database.
	Scopes     []string   // Optional scope labels attached to the key.
	LastUsedAt *time.Time // Timestamp of the last authenticated request made with this key.
	ExpiresAt  *time.Time // Optional expiry. Nil means the key never expires.
	RevokedAt  *time.Time // Set when the key has been revoked. Nil while the key is live.
	CreatedAt  time.Time  // Timestamp of when this key was created.
	UpdatedAt  time.Time  // Timestamp of the last modification to this key record.
}

// IsValid reports whether the key can still authenticate requests: not
// revoked and, when an expiry is set, not past it.
func (k *ApiKey) IsValid() bool {
	if k.RevokedAt != nil {
		return false
	}
	if k.ExpiresAt != nil && !time.Now().Before(*k.ExpiresAt) {
		return false
	}

	return true
}

// HasScope checks if the key carries a specific scope label.
func (k *ApiKey) HasScope(scope string) bool {
	return slices.Contains(k.Scopes, scope)
}
