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

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	t                  *testing.T
	service            usecase.AuthUsecase
	txManager          *mockRepo.MockTransactionManager
	userRepo           *mockRepo.MockUserRepository
	refreshSessionRepo *mockRepo.MockRefreshSessionRepository
	hasher             *mockSvc.MockPasswordHasher
	tokenService       *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:          txManager,
		UserRepo:           userRepo,
		RefreshSessionRepo: refreshSessionRepo,
		Hasher:             hasher,
		TokenService:       tokenService,
		Logger:             newDiscardLogger(),
	})

	return authServiceFixtures{
		t:                  t,
		service:            service,
		txManager:          txManager,
		userRepo:           userRepo,
		refreshSessionRepo: refreshSessionRepo,
		hasher:             hasher,
		tokenService:       tokenService,
	}
}

// onExecute wires the transaction manager to run the unit of work against a
// factory prepared by setup, propagating the unit's own error.
func (f authServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		Kind: service.TokenKindRefresh.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID.String(),
		},
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Username: "newuser",
		FullName: "New User",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockUserRepo.EXPECT().EmailExists(ctx, input.Email).Return(false, nil)
		mockUserRepo.EXPECT().UsernameExists(ctx, input.Username).Return(false, nil)

		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)

		fx.tokenService.EXPECT().
			IssueToken(service.TokenKindAccess, mock.AnythingOfType("uuid.UUID"), input.Email, "user").
			Return("access_token", nil)
		fx.tokenService.EXPECT().
			IssueToken(service.TokenKindRefresh, mock.AnythingOfType("uuid.UUID"), input.Email, "user").
			Return("refresh_token", nil)
		fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
		fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

		mockSessionRepo.EXPECT().
			CreateRefreshSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).
			Run(func(ctx context.Context, session *entity.RefreshSession) {
				assert.Equal(t, "refresh_hash", session.TokenHash)
			}).
			Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser.String(), output.User.Role)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "newuser",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockUserRepo.EXPECT().EmailExists(ctx, input.Email).Return(true, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Username: "taken",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockUserRepo.EXPECT().EmailExists(ctx, input.Email).Return(false, nil)
		mockUserRepo.EXPECT().UsernameExists(ctx, input.Username).Return(true, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameAlreadyExists))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
		Metadata: usecase.SessionMetadata{DeviceInfo: "iPhone", IPAddress: "203.0.113.7"},
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Username:     "user",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

	fx.tokenService.EXPECT().
		IssueToken(service.TokenKindAccess, user.ID, user.Email, "user").
		Return("access_token", nil)
	fx.tokenService.EXPECT().
		IssueToken(service.TokenKindRefresh, user.ID, user.Email, "user").
		Return("refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.refreshSessionRepo.EXPECT().
		CreateRefreshSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).
		Run(func(ctx context.Context, session *entity.RefreshSession) {
			assert.Equal(t, user.ID, session.UserID)
			assert.Equal(t, "iPhone", session.DeviceInfo)
			assert.Equal(t, "203.0.113.7", session.IPAddress)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user.Email, output.User.Email)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "user@example.com", Password: "wrong"}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		Status:       entity.StatusActive,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_SuspendedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "user@example.com", Password: "Password123!"}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		Status:       entity.StatusSuspended,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "old_refresh_token"}
	user := &entity.User{
		ID:     userID,
		Email:  "user@example.com",
		Role:   entity.RoleUser,
		Status: entity.StatusActive,
	}
	session := &entity.RefreshSession{
		ID:         uuid.New(),
		UserID:     userID,
		TokenHash:  "old_hash",
		DeviceInfo: "iPhone",
		IPAddress:  "203.0.113.7",
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, service.TokenKindRefresh).
		Return(refreshClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("old_hash")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().FindValidRefreshSessionByHash(ctx, "old_hash").Return(session, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockSessionRepo.EXPECT().RevokeValidRefreshSessionByHash(ctx, "old_hash").Return(true, nil)

		fx.tokenService.EXPECT().
			IssueToken(service.TokenKindAccess, userID, user.Email, "user").
			Return("new_access_token", nil)
		fx.tokenService.EXPECT().
			IssueToken(service.TokenKindRefresh, userID, user.Email, "user").
			Return("new_refresh_token", nil)
		fx.tokenService.EXPECT().HashToken("new_refresh_token").Return("new_hash")
		fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

		mockSessionRepo.EXPECT().
			CreateRefreshSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).
			Run(func(ctx context.Context, successor *entity.RefreshSession) {
				assert.Equal(t, "new_hash", successor.TokenHash)
				// Successor inherits the retired session's fingerprint.
				assert.Equal(t, "iPhone", successor.DeviceInfo)
				assert.Equal(t, "203.0.113.7", successor.IPAddress)
			}).
			Return(nil)
	})

	// The usage stamp on the retired session runs on a detached goroutine.
	fx.refreshSessionRepo.EXPECT().
		TouchRefreshSessionLastUsed(mock.Anything, "old_hash").
		Return(nil).
		Maybe()

	output, err := fx.service.Refresh(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", output.AccessToken)
	assert.Equal(t, "new_refresh_token", output.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "garbage"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, service.TokenKindRefresh).
		Return(nil, domainerrors.ErrTokenInvalid)

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_Refresh_SessionNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "revoked_token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, service.TokenKindRefresh).
		Return(refreshClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("revoked_hash")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindValidRefreshSessionByHash(ctx, "revoked_hash").
			Return(nil, repository.ErrRefreshSessionNotFound)
	})

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_Refresh_OwnerMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "stolen_token"}
	session := &entity.RefreshSession{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "stolen_hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, service.TokenKindRefresh).
		Return(refreshClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("stolen_hash")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().FindValidRefreshSessionByHash(ctx, "stolen_hash").Return(session, nil)
	})

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_Refresh_StaleSessionRow(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "stale_token"}
	// A session row that expired between the query and the read.
	session := &entity.RefreshSession{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "stale_hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, service.TokenKindRefresh).
		Return(refreshClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("stale_hash")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().FindValidRefreshSessionByHash(ctx, "stale_hash").Return(session, nil)
	})

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_Refresh_AlreadyRotated(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "raced_token"}
	user := &entity.User{ID: userID, Email: "user@example.com", Role: entity.RoleUser, Status: entity.StatusActive}
	session := &entity.RefreshSession{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "raced_hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, service.TokenKindRefresh).
		Return(refreshClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("raced_hash")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().FindValidRefreshSessionByHash(ctx, "raced_hash").Return(session, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		// A concurrent rotation claimed the session first.
		mockSessionRepo.EXPECT().RevokeValidRefreshSessionByHash(ctx, "raced_hash").Return(false, nil)
	})

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_Refresh_SuspendedOwner(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "suspended_token"}
	user := &entity.User{ID: userID, Email: "user@example.com", Status: entity.StatusSuspended}
	session := &entity.RefreshSession{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "suspended_hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, service.TokenKindRefresh).
		Return(refreshClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("suspended_hash")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshSessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().FindValidRefreshSessionByHash(ctx, "suspended_hash").Return(session, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "some_token"}

	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("some_hash")
	fx.refreshSessionRepo.EXPECT().RevokeRefreshSessionByHash(ctx, "some_hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_Logout_UnknownTokenIsNotAnError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "never_issued"}

	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("unknown_hash")
	fx.refreshSessionRepo.EXPECT().RevokeRefreshSessionByHash(ctx, "unknown_hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_LogoutAllDevices_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.refreshSessionRepo.EXPECT().RevokeRefreshSessionsByUserID(ctx, userID).Return(nil)

	err := fx.service.LogoutAllDevices(ctx, userID)

	require.NoError(t, err)
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:       userID,
		Email:    "user@example.com",
		Username: "user",
		Role:     entity.RoleUser,
		Status:   entity.StatusActive,
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	output, err := fx.service.CurrentUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, output.ID)
	assert.Equal(t, user.Email, output.Email)
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.CurrentUser(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
