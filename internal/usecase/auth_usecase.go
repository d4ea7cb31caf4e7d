// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"moneta/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SessionMetadata carries the client fingerprint captured when a session is
// opened or rotated.
type SessionMetadata struct {
	DeviceInfo string
	IPAddress  string
	UserAgent  string
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Username string
	FullName string
	Password string
	Metadata SessionMetadata
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	Metadata SessionMetadata
}

// RefreshInput defines the data required to rotate a session.
type RefreshInput struct {
	RefreshToken string
	Metadata     SessionMetadata
}

// LogoutInput defines the data required to close a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// UserOutput is the sanitized account view returned to clients.
// It never carries the password hash.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthOutput returns the token pair and account after register or login.
type AuthOutput struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         *UserOutput `json:"user"`
}

// TokenPairOutput returns the rotated token pair after a refresh.
type TokenPairOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewUserOutput maps a domain user to its sanitized client view.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role.String(),
		Status:    user.Status.String(),
		CreatedAt: user.CreatedAt,
	}
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and opens its first session.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh atomically rotates a session: the presented refresh token is
	// revoked and a successor is issued. A token that loses a concurrent
	// rotation race is rejected as invalid.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)

	// Logout revokes the presented session. It is idempotent and does not
	// reveal whether the session existed.
	Logout(ctx context.Context, input *LogoutInput) error

	// LogoutAllDevices revokes every live session belonging to the user.
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error

	// CurrentUser returns the sanitized account view for an authenticated user.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*UserOutput, error)
}
