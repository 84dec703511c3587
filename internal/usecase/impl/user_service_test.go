package impl

import (
	"context"
	"testing"
	"time"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/domain/service"
	mockRepo "autohub/internal/mocks/repository"
	mockSvc "autohub/internal/mocks/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          *userService
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	resetRepo        *mockRepo.MockPasswordResetRepository
	profileRepo      *mockRepo.MockProfileRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	publisher        *mockSvc.MockEventPublisher
	now              time.Time
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fixtures := userServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		resetRepo:        mockRepo.NewMockPasswordResetRepository(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		now:              time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	srv := NewUserService(UserServiceParams{
		TxManager:        fixtures.txManager,
		UserRepo:         fixtures.userRepo,
		AuthRepo:         fixtures.authRepo,
		RefreshTokenRepo: fixtures.refreshTokenRepo,
		ResetRepo:        fixtures.resetRepo,
		ProfileRepo:      fixtures.profileRepo,
		Hasher:           fixtures.hasher,
		TokenService:     fixtures.tokenService,
		Publisher:        fixtures.publisher,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	}).(*userService)
	srv.now = func() time.Time { return fixtures.now }
	fixtures.service = srv

	return fixtures
}

func (f userServiceFixtures) expectTokens(userID uuid.UUID, roles []string) {
	f.tokenService.EXPECT().GenerateTokens(userID, roles).Return("access", "refresh", nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	f.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == "refresh-hash" && token.ExpiresAt.Equal(f.now.Add(time.Hour))
		})).
		Return(nil)
}

func TestUserService_SignUp_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Name: " Test User ", Email: " Test@Example.com ", Password: "Password123!"}
	userID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)

		factory.EXPECT().NewAuthRepository().Return(authRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewProfileRepository().Return(profileRepo)

		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
			Return(nil, repository.ErrAuthNotFound)
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
			Return(nil)
		authRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.UserID == userID && auth.PasswordHash == "hashed_password" && auth.ProviderUserID == "test@example.com"
			})).
			Return(nil)
		profileRepo.EXPECT().
			Save(ctx, mock.MatchedBy(func(profile *entity.UserProfile) bool {
				return profile.UserID == userID && profile.Role == entity.RoleCustomer && profile.DisplayName == "Test User"
			})).
			Return(nil)
	})

	fx.expectTokens(userID, []string{"customer"})

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "Test User", output.User.Name)
}

func TestUserService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Name: "Test", Email: "test@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewAuthRepository().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
			Return(&entity.Authentication{UserID: uuid.New()}, nil)
	})

	output, err := fx.service.SignUp(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_SignUp_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.SignUpInput{Name: "Test", Email: "test@example.com", Password: "short"}
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := fx.service.SignUp(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_SignIn(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "nobody@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "test@example.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hash"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "test@example.com", Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("shop owner gets role claim", func(t *testing.T) {
		fx := createTestUserService(t)
		userID := uuid.New()

		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "owner@example.com").
			Return(&entity.Authentication{UserID: userID, PasswordHash: "hash"}, nil)
		fx.hasher.EXPECT().Check("Password123!", "hash").Return(true)
		fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "owner@example.com"}, nil)
		fx.profileRepo.EXPECT().FindByUserID(mock.Anything, userID).Return(&entity.UserProfile{UserID: userID, Role: entity.RoleShopOwner}, nil)
		fx.expectTokens(userID, []string{"shop_owner"})

		output, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "Owner@example.com", Password: "Password123!"})

		require.NoError(t, err)
		assert.Equal(t, userID, output.User.ID)
	})
}

func TestUserService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("old-refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"customer"}).Return("new-access", "new-refresh", nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)

		refreshRepo.EXPECT().ConsumeRefreshToken(ctx, "old-hash").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fx.now.Add(time.Minute)}, nil)
		refreshRepo.EXPECT().CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "new-hash" && token.UserID == userID
		})).Return(nil)
	})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateToken("access").Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access"})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_Expired(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("stale").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)
		refreshRepo.EXPECT().ConsumeRefreshToken(ctx, "stale-hash").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fx.now.Add(-time.Second)}, nil)
	})

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "stale"})

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_SignOut_IgnoresInvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed"))
	fx.tokenService.EXPECT().HashToken("garbage").Return("garbage-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "garbage-hash").Return(nil)

	require.NoError(t, fx.service.SignOut(context.Background(), &usecase.SignOutInput{RefreshToken: "garbage"}))
}

func TestUserService_SendPasswordReset(t *testing.T) {
	t.Run("unknown email answers success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ghost@example.com").
			Return(nil, repository.ErrAuthNotFound)

		require.NoError(t, fx.service.SendPasswordReset(context.Background(), "Ghost@example.com"))
	})

	t.Run("known email stores hash and publishes raw token", func(t *testing.T) {
		fx := createTestUserService(t)
		userID := uuid.New()

		fx.authRepo.EXPECT().
			FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "test@example.com").
			Return(&entity.Authentication{UserID: userID}, nil)

		var rawToken string
		fx.tokenService.EXPECT().HashToken(mock.AnythingOfType("string")).
			Run(func(token string) { rawToken = token }).
			Return("reset-hash")
		fx.resetRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(reset *entity.PasswordReset) bool {
			return reset.UserID == userID && reset.TokenHash == "reset-hash" && reset.ExpiresAt.Equal(fx.now.Add(30*time.Minute))
		})).Return(nil)
		fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
			return event.Kind == service.EventPasswordReset && event.Email == "test@example.com" && event.Data["token"] == rawToken
		})).Return(nil)

		require.NoError(t, fx.service.SendPasswordReset(context.Background(), "test@example.com"))
		assert.NotEmpty(t, rawToken)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	t.Run("used token is rejected", func(t *testing.T) {
		fx := createTestUserService(t)
		usedAt := fx.now.Add(-time.Minute)

		fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword1!").Return(nil)
		fx.tokenService.EXPECT().HashToken("token").Return("token-hash")
		fx.resetRepo.EXPECT().FindByHash(mock.Anything, "token-hash").
			Return(&entity.PasswordReset{ID: uuid.New(), ExpiresAt: fx.now.Add(time.Hour), UsedAt: &usedAt}, nil)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "token", NewPassword: "NewPassword1!"})

		assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
	})

	t.Run("valid token updates hash and revokes sessions", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		reset := &entity.PasswordReset{ID: uuid.New(), UserID: uuid.New(), ExpiresAt: fx.now.Add(time.Hour)}
		authID := uuid.New()

		fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword1!").Return(nil)
		fx.hasher.EXPECT().Hash("NewPassword1!").Return("new-hash", nil)
		fx.tokenService.EXPECT().HashToken("token").Return("token-hash")
		fx.resetRepo.EXPECT().FindByHash(ctx, "token-hash").Return(reset, nil)

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			resetRepo := mockRepo.NewMockPasswordResetRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			factory.EXPECT().NewPasswordResetRepository().Return(resetRepo)
			factory.EXPECT().NewAuthRepository().Return(authRepo)
			factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)

			resetRepo.EXPECT().MarkUsed(ctx, reset.ID, fx.now).Return(nil)
			authRepo.EXPECT().FindAuthenticationByUserID(ctx, reset.UserID, entity.ProviderTypeEmail).
				Return(&entity.Authentication{ID: authID, UserID: reset.UserID}, nil)
			authRepo.EXPECT().UpdatePasswordHash(ctx, authID, "new-hash").Return(nil)
			refreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, reset.UserID).Return(nil)
		})

		require.NoError(t, fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "token", NewPassword: "NewPassword1!"}))
	})
}

func TestUserService_UpdatePassword_WrongCurrent(t *testing.T) {
	fx := createTestUserService(t)
	userID := uuid.New()

	fx.authRepo.EXPECT().FindAuthenticationByUserID(mock.Anything, userID, entity.ProviderTypeEmail).
		Return(&entity.Authentication{ID: uuid.New(), PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("old", "hash").Return(false)

	err := fx.service.UpdatePassword(context.Background(), userID, &usecase.UpdatePasswordInput{CurrentPassword: "old", NewPassword: "NewPassword1!"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_CurrentPrincipal_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CurrentPrincipal(context.Background(), userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateDisplayName(t *testing.T) {
	t.Run("renames account and stored profile", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		userID := uuid.New()

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			userRepo := mockRepo.NewMockUserRepository(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewProfileRepository().Return(profileRepo)

			userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Old"}, nil)
			userRepo.EXPECT().UpdateName(ctx, userID, "New Name").Return(nil)
			profileRepo.EXPECT().FindByUserID(ctx, userID).
				Return(&entity.UserProfile{UserID: userID, DisplayName: "Old", Role: entity.RoleCustomer}, nil)
			profileRepo.EXPECT().
				Save(ctx, mock.MatchedBy(func(profile *entity.UserProfile) bool { return profile.DisplayName == "New Name" })).
				Return(nil)
		})

		user, err := fx.service.UpdateDisplayName(ctx, userID, "  New Name ")

		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateDisplayName(context.Background(), uuid.New(), "   ")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
