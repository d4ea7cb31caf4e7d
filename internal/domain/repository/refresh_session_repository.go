// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"moneta/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshSessionNotFound is returned when no redeemable session matches a hash.
var ErrRefreshSessionNotFound = errors.New("refresh session not found")

// RefreshSessionRepository defines the interface for refresh session management operations.
// This supports multi-device login and remote logout functionality.
type RefreshSessionRepository interface {
	// CreateRefreshSession persists a new refresh session.
	CreateRefreshSession(ctx context.Context, session *entity.RefreshSession) error

	// FindValidRefreshSessionByHash retrieves the session matching a token hash,
	// filtering revoked and expired sessions at the query level. Returns
	// ErrRefreshSessionNotFound when no redeemable session matches.
	FindValidRefreshSessionByHash(ctx context.Context, tokenHash string) (*entity.RefreshSession, error)

	// RevokeValidRefreshSessionByHash marks the session matching a token hash as
	// revoked, but only if it is still valid. Reports whether a row was claimed,
	// which lets concurrent refreshes race safely: exactly one caller wins.
	RevokeValidRefreshSessionByHash(ctx context.Context, tokenHash string) (bool, error)

	// RevokeRefreshSessionByHash marks the session matching a token hash as revoked.
	// Revoking an already-revoked or unknown session is not an error.
	RevokeRefreshSessionByHash(ctx context.Context, tokenHash string) error

	// RevokeRefreshSessionsByUserID revokes all live sessions for a user.
	// This backs "logout from all devices" functionality.
	RevokeRefreshSessionsByUserID(ctx context.Context, userID uuid.UUID) error

	// TouchRefreshSessionLastUsed stamps the session's last_used_at.
	TouchRefreshSessionLastUsed(ctx context.Context, tokenHash string) error
}
