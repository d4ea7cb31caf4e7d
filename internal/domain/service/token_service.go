package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind discriminates the two token flavors issued by the service.
type TokenKind string

const (
	// TokenKindAccess is the short-lived token presented on API requests.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is the long-lived token redeemed for a new pair.
	TokenKindRefresh TokenKind = "refresh"
)

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Kind  string `json:"token_type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim as the user's UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed token of the given kind for a user.
	// Access and refresh tokens are signed with distinct secrets.
	IssueToken(kind TokenKind, userID uuid.UUID, email string, role string) (string, error)

	// ValidateToken checks a token string against the expected kind.
	// A token whose signature, shape or kind does not match yields
	// ErrTokenInvalid; a well-formed token of the right kind past its
	// expiry yields ErrTokenExpired.
	ValidateToken(tokenString string, expectedKind TokenKind) (*Claims, error)

	// HashToken returns the hex-encoded SHA-256 digest of a raw token,
	// the form in which refresh tokens are persisted and looked up.
	HashToken(tokenString string) string

	// AccessTokenDuration returns the configured lifetime for access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime for refresh tokens.
	RefreshTokenDuration() time.Duration
}
