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

// apiKeyRepository implements the repository.ApiKeyRepository interface.
type apiKeyRepository struct {
	db *gorm.DB
}

// NewApiKeyRepository is the constructor for apiKeyRepository.
func NewApiKeyRepository(db *gorm.DB) repository.ApiKeyRepository {
	return &apiKeyRepository{
		db: db,
	}
}

// CreateApiKey persists a new API key record.
func (repo *apiKeyRepository) CreateApiKey(ctx context.Context, key *entity.ApiKey) error {
	keyM := fromApiKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrApiKeyGenerationFailed.WrapMessage("key hash collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrApiKeyGenerationFailed.WrapMessage("missing required key information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create api key")
	}

	// Update the entity with generated values
	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt
	key.UpdatedAt = keyM.UpdatedAt

	return nil
}

// FindValidApiKeyByHash retrieves the key matching a hash. Revoked and expired
// keys are filtered in the query itself.
func (repo *apiKeyRepository) FindValidApiKeyByHash(ctx context.Context, keyHash string) (*entity.ApiKey, error) {
	var keyM model.ApiKeyModel

	if err := repo.db.WithContext(ctx).
		Where("key_hash = ? AND revoked_at IS NULL AND (expires_at IS NULL OR expires_at > ?)", keyHash, time.Now()).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApiKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find api key by hash")
	}

	return toApiKeyDomain(&keyM), nil
}

// ListValidApiKeysByUserID retrieves a user's usable keys, newest first.
func (repo *apiKeyRepository) ListValidApiKeysByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ApiKey, error) {
	var keyModels []*model.ApiKeyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND revoked_at IS NULL AND (expires_at IS NULL OR expires_at > ?)", userID, time.Now()).
		Order("created_at DESC").
		Find(&keyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list api keys for user")
	}

	keys := make([]*entity.ApiKey, 0, len(keyModels))
	for _, keyM := range keyModels {
		keys = append(keys, toApiKeyDomain(keyM))
	}

	return keys, nil
}

// RevokeApiKey marks a key as revoked. The user filter enforces ownership in
// the same statement, so a foreign key id is indistinguishable from a missing
// one: both return ErrApiKeyNotFound.
func (repo *apiKeyRepository) RevokeApiKey(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ApiKeyModel{}).
		Where("id = ? AND user_id = ? AND revoked_at IS NULL", id, userID).
		Updates(map[string]any{"revoked_at": now, "updated_at": now})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to revoke api key")
	}

	// If no rows were affected, the key does not exist, is already revoked,
	// or belongs to someone else.
	if result.RowsAffected == 0 {
		return repository.ErrApiKeyNotFound
	}

	return nil
}

// TouchApiKeyLastUsed stamps the key's last_used_at.
func (repo *apiKeyRepository) TouchApiKeyLastUsed(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ApiKeyModel{}).
		Where("id = ?", id).
		Update("last_used_at", time.Now()).Error; err != nil {
		return errors.Wrap(err, "failed to touch api key")
	}

	return nil
}

// --- Mapper Functions ---

// toApiKeyDomain converts a GORM ApiKeyModel to a domain ApiKey entity.
func toApiKeyDomain(data *model.ApiKeyModel) *entity.ApiKey {
	if data == nil {
		return nil
	}

	return &entity.ApiKey{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		KeyPrefix:  data.KeyPrefix,
		KeyHash:    data.KeyHash,
		Scopes:     data.Scopes,
		LastUsedAt: data.LastUsedAt,
		ExpiresAt:  data.ExpiresAt,
		RevokedAt:  data.RevokedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromApiKeyDomain converts a domain ApiKey entity to a GORM ApiKeyModel.
func fromApiKeyDomain(data *entity.ApiKey) *model.ApiKeyModel {
	if data == nil {
		return nil
	}

	return &model.ApiKeyModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		KeyPrefix:  data.KeyPrefix,
		KeyHash:    data.KeyHash,
		Scopes:     data.Scopes,
		LastUsedAt: data.LastUsedAt,
		ExpiresAt:  data.ExpiresAt,
		RevokedAt:  data.RevokedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
