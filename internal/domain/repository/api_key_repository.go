// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"moneta/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApiKeyNotFound is returned when no matching API key exists, including
// when a revoke targets a key the caller does not own.
var ErrApiKeyNotFound = errors.New("api key not found")

// ApiKeyRepository defines the interface for API key persistence operations.
type ApiKeyRepository interface {
	// CreateApiKey persists a new API key record.
	CreateApiKey(ctx context.Context, key *entity.ApiKey) error

	// FindValidApiKeyByHash retrieves the key matching a hash, filtering
	// revoked and expired keys at the query level. Returns ErrApiKeyNotFound
	// when no usable key matches.
	FindValidApiKeyByHash(ctx context.Context, keyHash string) (*entity.ApiKey, error)

	// ListValidApiKeysByUserID retrieves a user's usable keys, newest first.
	ListValidApiKeysByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ApiKey, error)

	// RevokeApiKey marks a key as revoked. The userID acts as an ownership
	// check: revoking another user's key, an unknown key or an already
	// revoked key all return ErrApiKeyNotFound.
	RevokeApiKey(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// TouchApiKeyLastUsed stamps the key's last_used_at.
	TouchApiKeyLastUsed(ctx context.Context, id uuid.UUID) error
}
