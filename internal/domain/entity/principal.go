// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Principal is the authenticated identity attached to a request after the
// presented credential (bearer token or API key) has been verified against
// a live, non-deleted account.
type Principal struct {
	UserID uuid.UUID // The authenticated user's unique identifier.
	Email  string    // The authenticated user's email. May be empty.
	Role   Role      // The authenticated user's role.
	Status Status    // The account status at authentication time. Always StatusActive.
}
