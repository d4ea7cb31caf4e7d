// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"moneta/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateApiKeyInput defines the data required to mint a new API key.
type CreateApiKeyInput struct {
	UserID        uuid.UUID
	Name          string
	Live          bool
	Scopes        []string
	ExpiresInDays int // 0 means the key never expires.
}

// CreateApiKeyOutput returns the freshly minted key. The raw Key is shown
// exactly once; subsequent listings only expose the display prefix.
type CreateApiKeyOutput struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Key       string     `json:"key"`
	KeyPrefix string     `json:"key_prefix"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ApiKeyOutput is the metadata view of a key used in listings.
type ApiKeyOutput struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"key_prefix"`
	Scopes     []string   `json:"scopes,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewApiKeyOutput maps a domain key to its listing view.
func NewApiKeyOutput(key *entity.ApiKey) *ApiKeyOutput {
	if key == nil {
		return nil
	}

	return &ApiKeyOutput{
		ID:         key.ID,
		Name:       key.Name,
		KeyPrefix:  key.KeyPrefix,
		Scopes:     key.Scopes,
		LastUsedAt: key.LastUsedAt,
		ExpiresAt:  key.ExpiresAt,
		CreatedAt:  key.CreatedAt,
	}
}

// ApiKeyUsecase defines the interface for API key management operations.
type ApiKeyUsecase interface {
	// CreateApiKey mints a key for the user and returns its one-time material.
	CreateApiKey(ctx context.Context, input *CreateApiKeyInput) (*CreateApiKeyOutput, error)

	// ListApiKeys returns the user's usable keys, newest first, metadata only.
	ListApiKeys(ctx context.Context, userID uuid.UUID) ([]*ApiKeyOutput, error)

	// RevokeApiKey revokes a key owned by the user. A key that does not
	// exist, is already revoked or belongs to someone else is reported as
	// not found.
	RevokeApiKey(ctx context.Context, userID, keyID uuid.UUID) error
}
