package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"moneta/internal/delivery/http/response"
	"moneta/internal/domain/entity"
	domainerrors "moneta/internal/domain/errors"
	"moneta/internal/domain/repository"
	"moneta/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// KeyPrincipal is the echo context key carrying the authenticated identity.
	KeyPrincipal = "principal"

	// KeyUserID is the echo context key carrying the authenticated user's ID.
	KeyUserID = "userID"

	headerApiKey = "X-API-Key"
	bearerPrefix = "Bearer "

	touchTimeout = 5 * time.Second
)

// AuthMiddleware resolves a request's credential, either a Bearer access
// token or an X-API-Key header, into a Principal on the echo context.
type AuthMiddleware struct {
	tokenService service.TokenService
	apiKeyCrypto service.ApiKeyService
	apiKeyRepo   repository.ApiKeyRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	ApiKeyCrypto service.ApiKeyService
	ApiKeyRepo   repository.ApiKeyRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		apiKeyCrypto: params.ApiKeyCrypto,
		apiKeyRepo:   params.ApiKeyRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// Authenticate rejects requests without a valid credential. Handlers behind
// it can rely on a Principal being present on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.resolvePrincipal(c)
		if err != nil {
			return m.reject(c, err)
		}

		c.Set(KeyPrincipal, principal)
		c.Set(KeyUserID, principal.UserID)

		return next(c)
	}
}

// OptionalAuthenticate attaches a Principal when a valid credential is
// present and lets the request through anonymously otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.resolvePrincipal(c)
		if err == nil {
			c.Set(KeyPrincipal, principal)
			c.Set(KeyUserID, principal.UserID)
		}

		return next(c)
	}
}

// RequireRole checks the authenticated Principal's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(KeyPrincipal).(*entity.Principal)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
			}

			if principal.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// resolvePrincipal authenticates the request's credential. Bearer tokens take
// precedence when both headers are present.
func (m *AuthMiddleware) resolvePrincipal(c echo.Context) (*entity.Principal, error) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		return m.resolveBearer(c, authHeader)
	}

	if apiKey := c.Request().Header.Get(headerApiKey); apiKey != "" {
		return m.resolveApiKey(c, apiKey)
	}

	return nil, domainerrors.ErrUnauthorized.WrapMessage("no credential presented")
}

func (m *AuthMiddleware) resolveBearer(c echo.Context, authHeader string) (*entity.Principal, error) {
	tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
	if tokenString == authHeader || tokenString == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("malformed authorization header")
	}

	claims, err := m.tokenService.ValidateToken(tokenString, service.TokenKindAccess)
	if err != nil {
		return nil, errors.Wrap(err, "access token rejected")
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("access token rejected")
	}

	user, err := m.userRepo.FindByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}
	if !user.IsActive() {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is not active")
	}

	return &entity.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}, nil
}

func (m *AuthMiddleware) resolveApiKey(c echo.Context, rawKey string) (*entity.Principal, error) {
	// Cheap shape check before touching the database.
	if !m.apiKeyCrypto.ValidateFormat(rawKey) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("malformed api key")
	}

	ctx := c.Request().Context()
	keyHash := m.apiKeyCrypto.Hash(rawKey)

	apiKey, err := m.apiKeyRepo.FindValidApiKeyByHash(ctx, keyHash)
	if err != nil {
		if errors.Is(err, repository.ErrApiKeyNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("unknown api key")
		}

		return nil, errors.Wrap(err, "failed to look up api key")
	}

	// The query already filters dead keys; re-check on the fetched row so
	// a stale read can never authenticate one.
	if !apiKey.IsValid() {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("api key no longer valid")
	}

	user, err := m.userRepo.FindByID(ctx, apiKey.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("api key owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load api key owner")
	}
	if !user.IsActive() {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is not active")
	}

	// Best effort usage stamp, off the request path.
	go func() {
		touchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), touchTimeout)
		defer cancel()

		if err := m.apiKeyRepo.TouchApiKeyLastUsed(touchCtx, apiKey.ID); err != nil {
			m.logger.Warn("Failed to touch api key", slog.Any("keyID", apiKey.ID), slog.Any("error", err))
		}
	}()

	return &entity.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}, nil
}

// reject maps an authentication failure onto its HTTP response.
func (m *AuthMiddleware) reject(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return response.Unauthorized(c, "TOKEN_EXPIRED", "Access token has expired")
	case errors.Is(err, domainerrors.ErrTokenInvalid):
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid credential")
	case errors.Is(err, domainerrors.ErrForbidden):
		return response.Forbidden(c, "FORBIDDEN", "Account is not active")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	default:
		m.logger.Error("Authentication failed", slog.Any("error", err))

		return response.InternalServerError(c, "INTERNAL_ERROR", "Authentication failed")
	}
}
