// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"moneta/internal/domain/entity"
	domainerrors "moneta/internal/domain/errors"
	"moneta/internal/domain/repository"
	"moneta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshSessionRepository implements the repository.RefreshSessionRepository interface.
type refreshSessionRepository struct {
	db *gorm.DB
}

// NewRefreshSessionRepository is the constructor for refreshSessionRepository.
func NewRefreshSessionRepository(db *gorm.DB) repository.RefreshSessionRepository {
	return &refreshSessionRepository{
		db: db,
	}
}

// CreateRefreshSession persists a new refresh session.
func (repo *refreshSessionRepository) CreateRefreshSession(ctx context.Context, session *entity.RefreshSession) error {
	sessionM := fromRefreshSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTokenInvalid.WrapMessage("refresh session already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required session information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindValidRefreshSessionByHash retrieves the session matching a token hash.
// Revoked and expired sessions are filtered in the query itself, so callers
// never observe a dead session.
func (repo *refreshSessionRepository) FindValidRefreshSessionByHash(ctx context.Context, tokenHash string) (*entity.RefreshSession, error) {
	var sessionM model.RefreshSessionModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", tokenHash, time.Now()).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh session by hash")
	}

	return toRefreshSessionDomain(&sessionM), nil
}

// RevokeValidRefreshSessionByHash revokes the session only if it is still valid.
// The WHERE clause doubles as a compare-and-swap: under concurrent refreshes of
// the same token, exactly one caller sees a row claimed.
func (repo *refreshSessionRepository) RevokeValidRefreshSessionByHash(ctx context.Context, tokenHash string) (bool, error) {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", tokenHash, now).
		Update("revoked_at", now)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to revoke refresh session")
	}

	return result.RowsAffected > 0, nil
}

// RevokeRefreshSessionByHash marks the session matching a token hash as revoked.
// Unknown and already-revoked hashes are not an error, keeping logout idempotent.
func (repo *refreshSessionRepository) RevokeRefreshSessionByHash(ctx context.Context, tokenHash string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", time.Now()).Error; err != nil {
		return errors.Wrap(err, "failed to revoke refresh session")
	}

	return nil
}

// RevokeRefreshSessionsByUserID revokes all live sessions for a user.
func (repo *refreshSessionRepository) RevokeRefreshSessionsByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now()).Error; err != nil {
		return errors.Wrap(err, "failed to revoke refresh sessions for user")
	}

	return nil
}

// TouchRefreshSessionLastUsed stamps the session's last_used_at.
func (repo *refreshSessionRepository) TouchRefreshSessionLastUsed(ctx context.Context, tokenHash string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("token_hash = ?", tokenHash).
		Update("last_used_at", time.Now()).Error; err != nil {
		return errors.Wrap(err, "failed to touch refresh session")
	}

	return nil
}

// --- Mapper Functions ---

// toRefreshSessionDomain converts a GORM RefreshSessionModel to a domain RefreshSession entity.
func toRefreshSessionDomain(data *model.RefreshSessionModel) *entity.RefreshSession {
	if data == nil {
		return nil
	}

	return &entity.RefreshSession{
		ID:         data.ID,
		UserID:     data.UserID,
		TokenHash:  data.TokenHash,
		DeviceInfo: data.DeviceInfo,
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
		ExpiresAt:  data.ExpiresAt,
		RevokedAt:  data.RevokedAt,
		CreatedAt:  data.CreatedAt,
		LastUsedAt: data.LastUsedAt,
	}
}

// fromRefreshSessionDomain converts a domain RefreshSession entity to a GORM RefreshSessionModel.
func fromRefreshSessionDomain(data *entity.RefreshSession) *model.RefreshSessionModel {
	if data == nil {
		return nil
	}

	return &model.RefreshSessionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		TokenHash:  data.TokenHash,
		DeviceInfo: data.DeviceInfo,
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
		ExpiresAt:  data.ExpiresAt,
		RevokedAt:  data.RevokedAt,
		CreatedAt:  data.CreatedAt,
		LastUsedAt: data.LastUsedAt,
	}
}
