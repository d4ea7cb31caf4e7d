package impl

import (
	"context"
	"testing"
	"time"

	"moneta/internal/domain/entity"
	domainerrors "moneta/internal/domain/errors"
	"moneta/internal/domain/repository"
	"moneta/internal/domain/service"
	mockRepo "moneta/internal/mocks/repository"
	mockSvc "moneta/internal/mocks/service"
	"moneta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// apiKeyServiceFixtures holds all test dependencies for api key service tests.
type apiKeyServiceFixtures struct {
	service      usecase.ApiKeyUsecase
	apiKeyRepo   *mockRepo.MockApiKeyRepository
	apiKeyCrypto *mockSvc.MockApiKeyService
}

func createTestApiKeyService(t *testing.T) apiKeyServiceFixtures {
	apiKeyRepo := mockRepo.NewMockApiKeyRepository(t)
	apiKeyCrypto := mockSvc.NewMockApiKeyService(t)

	service := NewApiKeyService(ApiKeyServiceParams{
		ApiKeyRepo:   apiKeyRepo,
		ApiKeyCrypto: apiKeyCrypto,
		Logger:       newDiscardLogger(),
	})

	return apiKeyServiceFixtures{
		service:      service,
		apiKeyRepo:   apiKeyRepo,
		apiKeyCrypto: apiKeyCrypto,
	}
}

func TestApiKeyService_CreateApiKey_Success(t *testing.T) {
	fx := createTestApiKeyService(t)

	ctx := context.Background()
	input := &usecase.CreateApiKeyInput{
		UserID: uuid.New(),
		Name:   "ci pipeline",
		Live:   true,
		Scopes: []string{"read", "write"},
	}
	generated := &service.GeneratedApiKey{
		Key:       "mnt_live_deadbeef",
		KeyPrefix: "mnt_live_deadbee",
		KeyHash:   "hash_of_key",
	}

	fx.apiKeyCrypto.EXPECT().Generate(true).Return(generated, nil)

	fx.apiKeyRepo.EXPECT().
		CreateApiKey(ctx, mock.AnythingOfType("*entity.ApiKey")).
		Run(func(ctx context.Context, key *entity.ApiKey) {
			assert.Equal(t, input.UserID, key.UserID)
			assert.Equal(t, generated.KeyHash, key.KeyHash)
			assert.Nil(t, key.ExpiresAt)
			key.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.CreateApiKey(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "mnt_live_deadbeef", output.Key)
	assert.Equal(t, "mnt_live_deadbee", output.KeyPrefix)
	assert.Equal(t, input.Name, output.Name)
}

func TestApiKeyService_CreateApiKey_WithExpiry(t *testing.T) {
	fx := createTestApiKeyService(t)

	ctx := context.Background()
	input := &usecase.CreateApiKeyInput{
		UserID:        uuid.New(),
		Name:          "short lived",
		ExpiresInDays: 30,
	}
	generated := &service.GeneratedApiKey{
		Key:       "mnt_test_cafebabe",
		KeyPrefix: "mnt_test_cafebab",
		KeyHash:   "hash_of_key",
	}

	fx.apiKeyCrypto.EXPECT().Generate(false).Return(generated, nil)

	fx.apiKeyRepo.EXPECT().
		CreateApiKey(ctx, mock.AnythingOfType("*entity.ApiKey")).
		Run(func(ctx context.Context, key *entity.ApiKey) {
			require.NotNil(t, key.ExpiresAt)
			assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *key.ExpiresAt, time.Minute)
		}).
		Return(nil)

	output, err := fx.service.CreateApiKey(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output.ExpiresAt)
}

func TestApiKeyService_CreateApiKey_GenerationFails(t *testing.T) {
	fx := createTestApiKeyService(t)

	ctx := context.Background()
	input := &usecase.CreateApiKeyInput{UserID: uuid.New(), Name: "broken"}

	fx.apiKeyCrypto.EXPECT().Generate(false).Return(nil, errors.New("entropy exhausted"))

	output, err := fx.service.CreateApiKey(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrApiKeyGenerationFailed))
}

func TestApiKeyService_ListApiKeys_Success(t *testing.T) {
	fx := createTestApiKeyService(t)

	ctx := context.Background()
	userID := uuid.New()
	keys := []*entity.ApiKey{
		{ID: uuid.New(), UserID: userID, Name: "newer", KeyPrefix: "mnt_live_aaaaaaa", CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: userID, Name: "older", KeyPrefix: "mnt_live_bbbbbbb", CreatedAt: time.Now().Add(-time.Hour)},
	}

	fx.apiKeyRepo.EXPECT().ListValidApiKeysByUserID(ctx, userID).Return(keys, nil)

	outputs, err := fx.service.ListApiKeys(ctx, userID)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "newer", outputs[0].Name)
	assert.Equal(t, "mnt_live_bbbbbbb", outputs[1].KeyPrefix)
}

func TestApiKeyService_ListApiKeys_Empty(t *testing.T) {
	fx := createTestApiKeyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.apiKeyRepo.EXPECT().ListValidApiKeysByUserID(ctx, userID).Return(nil, nil)

	outputs, err := fx.service.ListApiKeys(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestApiKeyService_RevokeApiKey_Success(t *testing.T) {
	fx := createTestApiKeyService(t)

	ctx := context.Background()
	userID := uuid.New()
	keyID := uuid.New()

	fx.apiKeyRepo.EXPECT().RevokeApiKey(ctx, keyID, userID).Return(nil)

	err := fx.service.RevokeApiKey(ctx, userID, keyID)

	require.NoError(t, err)
}

func TestApiKeyService_RevokeApiKey_NotOwned(t *testing.T) {
	fx := createTestApiKeyService(t)

	ctx := context.Background()
	userID := uuid.New()
	keyID := uuid.New()

	fx.apiKeyRepo.EXPECT().RevokeApiKey(ctx, keyID, userID).Return(repository.ErrApiKeyNotFound)

	err := fx.service.RevokeApiKey(ctx, userID, keyID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrApiKeyNotFound))
}
