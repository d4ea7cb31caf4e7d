package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	mockUc "moneta/internal/mocks/usecase"
	"moneta/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApiKeyHandler(t *testing.T) (*ApiKeyHandler, *mockUc.MockApiKeyUsecase) {
	uc := mockUc.NewMockApiKeyUsecase(t)
	h := NewApiKeyHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc
}

func TestApiKeyHandler_Create_Success(t *testing.T) {
	h, uc := newTestApiKeyHandler(t)

	body := `{"name":"ci pipeline","live":true,"scopes":["read"],"expires_in_days":30}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/api-keys", body)
	userID := uuid.New()
	c.Set("userID", userID)

	output := &usecase.CreateApiKeyOutput{
		ID:        uuid.New(),
		Name:      "ci pipeline",
		Key:       "mnt_live_deadbeef",
		KeyPrefix: "mnt_live_deadbee",
		CreatedAt: time.Now(),
	}

	uc.EXPECT().
		CreateApiKey(mock.Anything, mock.AnythingOfType("*usecase.CreateApiKeyInput")).
		Run(func(ctx context.Context, input *usecase.CreateApiKeyInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, "ci pipeline", input.Name)
			assert.True(t, input.Live)
			assert.Equal(t, 30, input.ExpiresInDays)
		}).
		Return(output, nil)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "mnt_live_deadbeef")
}

func TestApiKeyHandler_Create_MissingName(t *testing.T) {
	h, _ := newTestApiKeyHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/auth/api-keys", `{"live":true}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApiKeyHandler_Create_NoIdentity(t *testing.T) {
	h, _ := newTestApiKeyHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/auth/api-keys", `{"name":"ci"}`)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApiKeyHandler_List_Success(t *testing.T) {
	h, uc := newTestApiKeyHandler(t)

	c, rec := newTestContext(t, http.MethodGet, "/auth/api-keys", "")
	userID := uuid.New()
	c.Set("userID", userID)

	outputs := []*usecase.ApiKeyOutput{
		{ID: uuid.New(), Name: "ci pipeline", KeyPrefix: "mnt_live_deadbee"},
	}

	uc.EXPECT().ListApiKeys(mock.Anything, userID).Return(outputs, nil)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mnt_live_deadbee")
	// Listings never carry raw key material.
	assert.NotContains(t, rec.Body.String(), `"key"`)
}

func TestApiKeyHandler_Revoke_Success(t *testing.T) {
	h, uc := newTestApiKeyHandler(t)

	userID := uuid.New()
	keyID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/auth/api-keys/"+keyID.String()+"/revoke", "")
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(keyID.String())

	uc.EXPECT().RevokeApiKey(mock.Anything, userID, keyID).Return(nil)

	require.NoError(t, h.Revoke(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApiKeyHandler_Revoke_BadID(t *testing.T) {
	h, _ := newTestApiKeyHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/auth/api-keys/not-a-uuid/revoke", "")
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Revoke(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
