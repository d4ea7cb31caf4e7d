package auth

import (
	"testing"
	"time"

	"moneta/config"
	domainerrors "moneta/internal/domain/errors"
	"moneta/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, err := jwtService.IssueToken(service.TokenKindAccess, userID, "user@example.com", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := jwtService.IssueToken(service.TokenKindRefresh, userID, "user@example.com", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	// The two tokens are signed with distinct secrets, so they can never
	// be mistaken for one another.
	assert.NotEqual(t, accessToken, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(accessToken, service.TokenKindAccess)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	gotID, err := accessClaims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "user@example.com", accessClaims.Email)
	assert.Equal(t, "user", accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Kind)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(refreshToken, service.TokenKindRefresh)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, "refresh", refreshClaims.Kind)
}

func TestJWTService_KindMismatch(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)

	userID := uuid.New()

	// A refresh token presented where an access token is expected is
	// invalid, not expired.
	refreshToken, err := jwtService.IssueToken(service.TokenKindRefresh, userID, "", "user")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(refreshToken, service.TokenKindAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	accessToken, err := jwtService.IssueToken(service.TokenKindAccess, userID, "", "user")
	assert.NoError(t, err)

	claims, err = jwtService.ValidateToken(accessToken, service.TokenKindRefresh)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.Token = &config.TokenConfig{
		AccessTTL:  time.Millisecond,
		RefreshTTL: time.Hour,
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.IssueToken(service.TokenKindAccess, uuid.New(), "", "user")
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	claims, err := jwtService.ValidateToken(token, service.TokenKindAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))

	// The same expired token checked against the wrong kind must surface
	// as invalid, never as expired.
	claims, err = jwtService.ValidateToken(token, service.TokenKindRefresh)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", service.TokenKindAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	// Tampered signature
	userID := uuid.New()
	token, err := jwtService.IssueToken(service.TokenKindAccess, userID, "", "user")
	assert.NoError(t, err)

	claims, err = jwtService.ValidateToken(token+"x", service.TokenKindAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	// Should fail to create service
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_Durations(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)

	// Defaults apply when no token config is provided
	assert.Equal(t, time.Minute*15, jwtService.AccessTokenDuration())
	assert.Equal(t, time.Hour*24*7, jwtService.RefreshTokenDuration())

	cfg := newTestConfig()
	cfg.Token = &config.TokenConfig{AccessTTL: time.Minute * 5, RefreshTTL: time.Hour * 24}
	jwtService, err = NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Minute*5, jwtService.AccessTokenDuration())
	assert.Equal(t, time.Hour*24, jwtService.RefreshTokenDuration())
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)

	hash := jwtService.HashToken("some-token")
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, jwtService.HashToken("some-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("some-other-token"))
}
