package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moneta/internal/domain/entity"
	domainerrors "moneta/internal/domain/errors"
	"moneta/internal/domain/repository"
	"moneta/internal/domain/service"
	mockRepo "moneta/internal/mocks/repository"
	mockSvc "moneta/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware   *AuthMiddleware
	tokenService *mockSvc.MockTokenService
	apiKeyCrypto *mockSvc.MockApiKeyService
	apiKeyRepo   *mockRepo.MockApiKeyRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenService := mockSvc.NewMockTokenService(t)
	apiKeyCrypto := mockSvc.NewMockApiKeyService(t)
	apiKeyRepo := mockRepo.NewMockApiKeyRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	m := NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenService,
		ApiKeyCrypto: apiKeyCrypto,
		ApiKeyRepo:   apiKeyRepo,
		UserRepo:     userRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return authMiddlewareFixtures{
		middleware:   m,
		tokenService: tokenService,
		apiKeyCrypto: apiKeyCrypto,
		apiKeyRepo:   apiKeyRepo,
		userRepo:     userRepo,
	}
}

func accessClaims(userID uuid.UUID, email string) *service.Claims {
	return &service.Claims{
		Email: email,
		Role:  "user",
		Kind:  service.TokenKindAccess.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID.String(),
		},
	}
}

// invoke runs the middleware chain against a request and reports whether the
// inner handler was reached and what principal it saw.
func invoke(t *testing.T, mw echo.MiddlewareFunc, setup func(req *http.Request)) (*httptest.ResponseRecorder, bool, *entity.Principal) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	setup(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	var principal *entity.Principal

	handler := mw(func(c echo.Context) error {
		reached = true
		principal, _ = c.Get(KeyPrincipal).(*entity.Principal)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reached, principal
}

func TestAuthMiddleware_Authenticate_BearerSuccess(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleUser, Status: entity.StatusActive}

	fx.tokenService.EXPECT().
		ValidateToken("valid_token", service.TokenKindAccess).
		Return(accessClaims(userID, user.Email), nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	rec, reached, principal := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid_token")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	require.NotNil(t, principal)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, entity.RoleUser, principal.Role)
}

func TestAuthMiddleware_Authenticate_MissingCredential(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_MalformedAuthorizationHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenService.EXPECT().
		ValidateToken("expired_token", service.TokenKindAccess).
		Return(nil, domainerrors.ErrTokenExpired)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer expired_token")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_Authenticate_SuspendedAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Status: entity.StatusSuspended}

	fx.tokenService.EXPECT().
		ValidateToken("valid_token", service.TokenKindAccess).
		Return(accessClaims(userID, user.Email), nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid_token")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_ApiKeySuccess(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleUser, Status: entity.StatusActive}
	apiKey := &entity.ApiKey{ID: uuid.New(), UserID: userID, KeyHash: "key_hash"}

	fx.apiKeyCrypto.EXPECT().ValidateFormat("mnt_live_raw").Return(true)
	fx.apiKeyCrypto.EXPECT().Hash("mnt_live_raw").Return("key_hash")
	fx.apiKeyRepo.EXPECT().FindValidApiKeyByHash(mock.Anything, "key_hash").Return(apiKey, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	// The usage stamp runs on a detached goroutine.
	fx.apiKeyRepo.EXPECT().TouchApiKeyLastUsed(mock.Anything, apiKey.ID).Return(nil).Maybe()

	rec, reached, principal := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set("X-API-Key", "mnt_live_raw")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	require.NotNil(t, principal)
	assert.Equal(t, userID, principal.UserID)
}

func TestAuthMiddleware_Authenticate_ApiKeyBadFormat(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.apiKeyCrypto.EXPECT().ValidateFormat("garbage").Return(false)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set("X-API-Key", "garbage")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_ApiKeyUnknown(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.apiKeyCrypto.EXPECT().ValidateFormat("mnt_live_revoked").Return(true)
	fx.apiKeyCrypto.EXPECT().Hash("mnt_live_revoked").Return("revoked_hash")
	fx.apiKeyRepo.EXPECT().
		FindValidApiKeyByHash(mock.Anything, "revoked_hash").
		Return(nil, repository.ErrApiKeyNotFound)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set("X-API-Key", "mnt_live_revoked")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_ApiKeyStaleRow(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	// A key row that expired between the query and the read.
	expiresAt := time.Now().Add(-time.Minute)
	apiKey := &entity.ApiKey{ID: uuid.New(), UserID: uuid.New(), KeyHash: "stale_hash", ExpiresAt: &expiresAt}

	fx.apiKeyCrypto.EXPECT().ValidateFormat("mnt_live_stale").Return(true)
	fx.apiKeyCrypto.EXPECT().Hash("mnt_live_stale").Return("stale_hash")
	fx.apiKeyRepo.EXPECT().
		FindValidApiKeyByHash(mock.Anything, "stale_hash").
		Return(apiKey, nil)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set("X-API-Key", "mnt_live_stale")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_BearerTakesPrecedence(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenService.EXPECT().
		ValidateToken("bad_token", service.TokenKindAccess).
		Return(nil, domainerrors.ErrTokenInvalid)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad_token")
		req.Header.Set("X-API-Key", "mnt_live_raw")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, reached, principal := invoke(t, fx.middleware.OptionalAuthenticate, func(req *http.Request) {})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Nil(t, principal)
}

func TestAuthMiddleware_OptionalAuthenticate_InvalidTokenIsIgnored(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenService.EXPECT().
		ValidateToken("bad_token", service.TokenKindAccess).
		Return(nil, domainerrors.ErrTokenInvalid)

	rec, reached, principal := invoke(t, fx.middleware.OptionalAuthenticate, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad_token")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Nil(t, principal)
}

func TestAuthMiddleware_OptionalAuthenticate_ValidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleUser, Status: entity.StatusActive}

	fx.tokenService.EXPECT().
		ValidateToken("valid_token", service.TokenKindAccess).
		Return(accessClaims(userID, user.Email), nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	_, reached, principal := invoke(t, fx.middleware.OptionalAuthenticate, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid_token")
	})

	assert.True(t, reached)
	require.NotNil(t, principal)
	assert.Equal(t, userID, principal.UserID)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()

	run := func(principal *entity.Principal) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if principal != nil {
			c.Set(KeyPrincipal, principal)
		}

		handler := fx.middleware.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		return rec
	}

	assert.Equal(t, http.StatusForbidden, run(nil).Code)
	assert.Equal(t, http.StatusForbidden, run(&entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}).Code)
	assert.Equal(t, http.StatusOK, run(&entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}).Code)
}

func TestAuthMiddleware_Authenticate_DeletedAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	deletedAt := time.Now()
	user := &entity.User{ID: userID, Email: "user@example.com", Status: entity.StatusActive, DeletedAt: &deletedAt}

	fx.tokenService.EXPECT().
		ValidateToken("valid_token", service.TokenKindAccess).
		Return(accessClaims(userID, user.Email), nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	rec, reached, _ := invoke(t, fx.middleware.Authenticate, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid_token")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}
