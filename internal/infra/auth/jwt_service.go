// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"moneta/config"
	domainerrors "moneta/internal/domain/errors"
	"moneta/internal/domain/service"
	"moneta/internal/errors"
)

const (
	defaultAccessTTL  = time.Minute * 15
	defaultRefreshTTL = time.Hour * 24 * 7
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Token != nil {
		if cfg.Token.AccessTTL > 0 {
			accessTTL = cfg.Token.AccessTTL
		}
		if cfg.Token.RefreshTTL > 0 {
			refreshTTL = cfg.Token.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// IssueToken creates a signed token of the given kind for a user.
func (s *jwtService) IssueToken(kind service.TokenKind, userID uuid.UUID, email string, role string) (string, error) {
	secret, ttl, err := s.kindParams(kind)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &service.Claims{
		Email: email,
		Role:  role,
		Kind:  kind.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken checks a token string against the expected kind.
// Every failure surfaces as ErrTokenInvalid except a well-formed token of the
// right kind past its expiry, which surfaces as ErrTokenExpired. A token of
// the wrong kind is never reported as expired.
func (s *jwtService) ValidateToken(tokenString string, expectedKind service.TokenKind) (*service.Claims, error) {
	secret, _, err := s.kindParams(expectedKind)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && claims.Kind == expectedKind.String() {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	if !token.Valid || claims.Kind != expectedKind.String() {
		return nil, domainerrors.ErrTokenInvalid
	}
	if _, err := claims.UserID(); err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}

// HashToken returns the hex-encoded SHA-256 digest of a raw token.
func (s *jwtService) HashToken(tokenString string) string {
	digest := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(digest[:])
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) kindParams(kind service.TokenKind) (secret string, ttl time.Duration, err error) {
	switch kind {
	case service.TokenKindAccess:
		return s.accessSecret, s.accessTTL, nil
	case service.TokenKindRefresh:
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return "", 0, errors.Errorf("unknown token kind: %q", kind)
	}
}
