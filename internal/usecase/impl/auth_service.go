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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager          repository.TransactionManager
	userRepo           repository.UserRepository
	refreshSessionRepo repository.RefreshSessionRepository
	hasher             service.PasswordHasher
	tokenService       service.TokenService
	logger             *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager          repository.TransactionManager
	UserRepo           repository.UserRepository
	RefreshSessionRepo repository.RefreshSessionRepository
	Hasher             service.PasswordHasher
	TokenService       service.TokenService
	Logger             *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:          params.TxManager,
		userRepo:           params.UserRepo,
		refreshSessionRepo: params.RefreshSessionRepo,
		hasher:             params.Hasher,
		tokenService:       params.TokenService,
		logger:             params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	// Hashing is CPU-bound, keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User
	var accessToken, refreshToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.RefreshSessionRepo()

		exists, err := userRepo.EmailExists(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if exists {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("registration failed")
		}

		exists, err = userRepo.UsernameExists(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username uniqueness")
		}
		if exists {
			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("registration failed")
		}

		newUser := &entity.User{
			Email:        input.Email,
			Username:     input.Username,
			FullName:     input.FullName,
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
			Status:       entity.StatusActive,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		accessToken, refreshToken, err = srv.issueTokenPair(newUser)
		if err != nil {
			return err
		}

		if err := srv.storeRefreshSession(ctx, sessionRepo, newUser.ID, refreshToken, input.Metadata); err != nil {
			return err
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         usecase.NewUserOutput(registeredUser),
	}, nil
}

// Login verifies credentials and opens a session. A missing account, an
// account without a password and a wrong password are deliberately
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasPassword() || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// Credentials check first, status check second: a suspended account with
	// the wrong password still reads as invalid credentials.
	if !user.IsActive() {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is not active")
	}

	accessToken, refreshToken, err := srv.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := srv.storeRefreshSession(ctx, srv.refreshSessionRepo, user.ID, refreshToken, input.Metadata); err != nil {
		srv.log(ctx).Error("Failed to store refresh session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store refresh session")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         usecase.NewUserOutput(user),
	}, nil
}

// Refresh rotates a session. The presented token is revoked and a successor
// is created inside a single transaction; the revoke doubles as a
// compare-and-swap, so of two concurrent rotations of the same token exactly
// one succeeds and the other is rejected as invalid.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Attempting to refresh session")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenKindRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "refresh token rejected")
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh token rejected")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var newAccessToken, newRefreshToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.RefreshSessionRepo()
		userRepo := repoFactory.UserRepo()

		session, err := sessionRepo.FindValidRefreshSessionByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshSessionNotFound) {
				return domainerrors.ErrTokenInvalid.WrapMessage("refresh session not found")
			}

			return errors.Wrap(err, "failed to find refresh session")
		}

		// The query already filters dead sessions; re-check on the fetched
		// row so a stale read can never redeem one.
		if !session.IsValid() {
			return domainerrors.ErrTokenInvalid.WrapMessage("refresh session no longer valid")
		}

		// The signed token and the stored session must agree on the owner.
		if session.UserID != userID {
			return domainerrors.ErrTokenInvalid.WrapMessage("refresh session owner mismatch")
		}

		user, err := userRepo.FindByID(ctx, session.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrTokenInvalid.WrapMessage("session owner no longer exists")
			}

			return errors.Wrap(err, "failed to find session owner")
		}
		if !user.IsActive() {
			return domainerrors.ErrForbidden.WrapMessage("account is not active")
		}

		// Claim the old session. A concurrent rotation of the same token
		// may have claimed it first; that caller won, this one loses.
		claimed, err := sessionRepo.RevokeValidRefreshSessionByHash(ctx, tokenHash)
		if err != nil {
			return errors.Wrap(err, "failed to revoke refresh session")
		}
		if !claimed {
			return domainerrors.ErrTokenInvalid.WrapMessage("refresh session already rotated")
		}

		newAccessToken, newRefreshToken, err = srv.issueTokenPair(user)
		if err != nil {
			return err
		}

		// The successor session inherits the client fingerprint of the old
		// one unless the caller supplied fresh metadata.
		metadata := input.Metadata
		if metadata.DeviceInfo == "" {
			metadata.DeviceInfo = session.DeviceInfo
		}
		if metadata.IPAddress == "" {
			metadata.IPAddress = session.IPAddress
		}
		if metadata.UserAgent == "" {
			metadata.UserAgent = session.UserAgent
		}

		return srv.storeRefreshSession(ctx, sessionRepo, user.ID, newRefreshToken, metadata)
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	// Best effort usage stamp on the retired session.
	go func() {
		touchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := srv.refreshSessionRepo.TouchRefreshSessionLastUsed(touchCtx, tokenHash); err != nil {
			srv.logger.Warn("Failed to touch refresh session", slog.Any("error", err))
		}
	}()

	return &usecase.TokenPairOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout revokes the presented session. An unknown or already-revoked token
// is not an error, so the endpoint reveals nothing about stored sessions.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshSessionRepo.RevokeRefreshSessionByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh session", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke refresh session")
	}

	srv.log(ctx).Debug("Logout completed")

	return nil
}

// LogoutAllDevices revokes every live session belonging to the user.
func (srv *authService) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out all devices", slog.Any("userID", userID))

	if err := srv.refreshSessionRepo.RevokeRefreshSessionsByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to revoke sessions for user", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke sessions for user")
	}

	return nil
}

// CurrentUser returns the sanitized account view for an authenticated user.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("current user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserOutput(user), nil
}

// issueTokenPair creates the access and refresh tokens for a user.
func (srv *authService) issueTokenPair(user *entity.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = srv.tokenService.IssueToken(service.TokenKindAccess, user.ID, user.Email, user.Role.String())
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err = srv.tokenService.IssueToken(service.TokenKindRefresh, user.ID, user.Email, user.Role.String())
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue refresh token")
	}

	return accessToken, refreshToken, nil
}

// storeRefreshSession persists the hash of a freshly issued refresh token.
func (srv *authService) storeRefreshSession(
	ctx context.Context,
	sessionRepo repository.RefreshSessionRepository,
	userID uuid.UUID,
	refreshToken string,
	metadata usecase.SessionMetadata,
) error {
	session := &entity.RefreshSession{
		UserID:     userID,
		TokenHash:  srv.tokenService.HashToken(refreshToken),
		DeviceInfo: metadata.DeviceInfo,
		IPAddress:  metadata.IPAddress,
		UserAgent:  metadata.UserAgent,
		ExpiresAt:  time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	if err := sessionRepo.CreateRefreshSession(ctx, session); err != nil {
		return errors.Wrap(err, "failed to create refresh session")
	}

	return nil
}
