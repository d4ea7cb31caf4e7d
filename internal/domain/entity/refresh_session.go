// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSession represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires,
// without requiring the user's credentials again.
type RefreshSession struct {
	ID         uuid.UUID  // The unique ID for this session record.
	UserID     uuid.UUID  // Links this session to the User it belongs to.
	TokenHash  string     // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	DeviceInfo string     // A free-form description of the device that opened the session.
	IPAddress  string     // The IP address observed when the session was opened.
	UserAgent  string     // The User-Agent header observed when the session was opened.
	ExpiresAt  time.Time  // The exact time when this session expires and becomes invalid.
	RevokedAt  *time.Time // Set when the session has been revoked. Nil while the session is live.
	CreatedAt  time.Time  // Timestamp of when this session was created (i.e., when the user logged in).
	LastUsedAt *time.Time // Timestamp of the last time this session was presented for a refresh.
}

// IsValid reports whether the session can still be redeemed: not revoked
// and not past its expiry.
func (s *RefreshSession) IsValid() bool {
	return s.RevokedAt == nil && time.Now().Before(s.ExpiresAt)
}
