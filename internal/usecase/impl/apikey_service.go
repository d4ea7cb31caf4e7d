// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "moneta/internal/delivery/context"
	"moneta/internal/domain/entity"
	domainerrors "moneta/internal/domain/errors"
	"moneta/internal/domain/repository"
	"moneta/internal/domain/service"
	"moneta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// apiKeyService implements the ApiKeyUsecase interface.
type apiKeyService struct {
	apiKeyRepo   repository.ApiKeyRepository
	apiKeyCrypto service.ApiKeyService
	logger       *slog.Logger
}

// ApiKeyServiceParams holds dependencies for ApiKeyService, injected by Fx.
type ApiKeyServiceParams struct {
	fx.In

	ApiKeyRepo   repository.ApiKeyRepository
	ApiKeyCrypto service.ApiKeyService
	Logger       *slog.Logger
}

// NewApiKeyService is the constructor for apiKeyService.
func NewApiKeyService(params ApiKeyServiceParams) usecase.ApiKeyUsecase {
	return &apiKeyService{
		apiKeyRepo:   params.ApiKeyRepo,
		apiKeyCrypto: params.ApiKeyCrypto,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *apiKeyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateApiKey mints a key for the user and returns its one-time material.
func (srv *apiKeyService) CreateApiKey(ctx context.Context, input *usecase.CreateApiKeyInput) (*usecase.CreateApiKeyOutput, error) {
	srv.log(ctx).Info("Creating api key", slog.Any("userID", input.UserID), slog.String("name", input.Name))

	generated, err := srv.apiKeyCrypto.Generate(input.Live)
	if err != nil {
		srv.log(ctx).Error("Failed to generate api key", slog.Any("error", err))

		return nil, domainerrors.ErrApiKeyGenerationFailed.WrapMessage("failed to generate api key")
	}

	var expiresAt *time.Time
	if input.ExpiresInDays > 0 {
		t := time.Now().AddDate(0, 0, input.ExpiresInDays)
		expiresAt = &t
	}

	key := &entity.ApiKey{
		UserID:    input.UserID,
		Name:      input.Name,
		KeyPrefix: generated.KeyPrefix,
		KeyHash:   generated.KeyHash,
		Scopes:    input.Scopes,
		ExpiresAt: expiresAt,
	}

	if err := srv.apiKeyRepo.CreateApiKey(ctx, key); err != nil {
		srv.log(ctx).Error("Failed to persist api key", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist api key")
	}

	srv.log(ctx).Debug("Api key created", slog.Any("keyID", key.ID))

	// The raw key leaves the service exactly once, here.
	return &usecase.CreateApiKeyOutput{
		ID:        key.ID,
		Name:      key.Name,
		Key:       generated.Key,
		KeyPrefix: key.KeyPrefix,
		ExpiresAt: key.ExpiresAt,
		CreatedAt: key.CreatedAt,
	}, nil
}

// ListApiKeys returns the user's usable keys, newest first, metadata only.
func (srv *apiKeyService) ListApiKeys(ctx context.Context, userID uuid.UUID) ([]*usecase.ApiKeyOutput, error) {
	keys, err := srv.apiKeyRepo.ListValidApiKeysByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list api keys", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list api keys")
	}

	outputs := make([]*usecase.ApiKeyOutput, 0, len(keys))
	for _, key := range keys {
		outputs = append(outputs, usecase.NewApiKeyOutput(key))
	}

	return outputs, nil
}

// RevokeApiKey revokes a key owned by the user. Ownership is enforced by the
// repository, so a foreign key id reads as not found.
func (srv *apiKeyService) RevokeApiKey(ctx context.Context, userID, keyID uuid.UUID) error {
	srv.log(ctx).Info("Revoking api key", slog.Any("userID", userID), slog.Any("keyID", keyID))

	if err := srv.apiKeyRepo.RevokeApiKey(ctx, keyID, userID); err != nil {
		if errors.Is(err, repository.ErrApiKeyNotFound) {
			return domainerrors.ErrApiKeyNotFound.WrapMessage("revoke failed")
		}
		srv.log(ctx).Error("Failed to revoke api key", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke api key")
	}

	return nil
}
