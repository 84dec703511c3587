package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"time"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/domain/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTokenTTL = time.Hour

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	resetRepo        repository.PasswordResetRepository
	profileRepo      repository.ProfileRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	publisher        service.EventPublisher
	resetTokenTTL    time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	ResetRepo        repository.PasswordResetRepository
	ProfileRepo      repository.ProfileRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	resetTokenTTL := defaultResetTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		resetTokenTTL = params.Config.Auth.ResetTokenTTL
	}

	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		resetRepo:        params.ResetRepo,
		profileRepo:      params.ProfileRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		publisher:        params.Publisher,
		resetTokenTTL:    resetTokenTTL,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates an email account with a default customer profile and signs it in.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and email are required")
	}

	srv.log(ctx).Info("Starting sign up", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during sign up", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during sign up")
	}

	var newUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newUser = &entity.User{Email: email, Name: name}
		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during sign up")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during sign up")
		}

		profile := entity.NewDefaultProfile(newUser.ID, email, name)
		if err := repoFactory.NewProfileRepository().Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create default profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute sign up transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign up transaction")
	}

	accessToken, refreshToken, err := srv.issueTokens(ctx, newUser.ID, entity.Roles{entity.RoleCustomer})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Sign up completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: newUser}, nil
}

// SignIn verifies an email credential and issues a token pair.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign in", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Sign in failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign in failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign in failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to load user")
	}

	accessToken, refreshToken, err := srv.issueTokens(ctx, user.ID, srv.rolesOf(ctx, user.ID))
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: user}, nil
}

// SignOut revokes the refresh token. Unknown tokens are ignored.
func (srv *userService) SignOut(ctx context.Context, input *usecase.SignOutInput) error {
	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Sign out with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a new pair is issued.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("access token presented as refresh token")
	}

	roles := srv.rolesOf(ctx, claims.UserID)
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var output usecase.RefreshTokenOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		// a concurrent refresh with the same token finds nothing to consume
		stored, err := refreshRepo.ConsumeRefreshToken(ctx, tokenHash)
		if err != nil {
			return translateNotFound(err, repository.ErrRefreshTokenNotFound, domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
		}
		if stored.UserID != claims.UserID || !srv.now().Before(stored.ExpiresAt) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired")
		}

		output.AccessToken, output.RefreshToken, err = srv.tokenService.GenerateTokens(claims.UserID, roles.ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		return refreshRepo.CreateRefreshToken(ctx, srv.newRefreshToken(claims.UserID, output.RefreshToken))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to rotate refresh token", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &output, nil
}

// SendPasswordReset stores a single-use token and hands it to the mail pipeline.
// Unknown emails succeed silently so callers cannot probe for accounts.
func (srv *userService) SendPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to find authentication")
	}

	rawToken := rand.Text()
	reset := &entity.PasswordReset{
		UserID:    authRecord.UserID,
		TokenHash: srv.tokenService.HashToken(rawToken),
		ExpiresAt: srv.now().Add(srv.resetTokenTTL),
	}
	if err := srv.resetRepo.Create(ctx, reset); err != nil {
		return errors.Wrap(err, "failed to store password reset token")
	}

	event := &service.NotificationEvent{
		EventID:     uuid.NewString(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Kind:        service.EventPasswordReset,
		RecipientID: authRecord.UserID.String(),
		Email:       email,
		Title:       "Reset your password",
		Body:        "Use the code below to choose a new password.",
		Data:        map[string]string{"token": rawToken, "expires_at": reset.ExpiresAt.Format(time.RFC3339)},
	}
	if err := srv.publisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish password reset", slog.Any("userID", authRecord.UserID), slog.Any("error", err))
	}

	return nil
}

// ResetPassword redeems a reset token and revokes every session of the account.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "password does not meet security requirements")
	}

	tokenHash := srv.tokenService.HashToken(strings.TrimSpace(input.Token))
	reset, err := srv.resetRepo.FindByHash(ctx, tokenHash)
	if err != nil {
		return translateNotFound(err, repository.ErrPasswordResetNotFound, domainerrors.ErrResetTokenInvalid, "reset token not found")
	}

	now := srv.now()
	if !reset.IsUsable(now) {
		return domainerrors.ErrResetTokenInvalid.WrapMessage("reset token expired or already used")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPasswordResetRepository().MarkUsed(ctx, reset.ID, now); err != nil {
			return translateNotFound(err, repository.ErrPasswordResetNotFound, domainerrors.ErrResetTokenInvalid, "reset token already used")
		}

		authRepo := repoFactory.NewAuthRepository()
		authRecord, err := authRepo.FindAuthenticationByUserID(ctx, reset.UserID, entity.ProviderTypeEmail)
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := authRepo.UpdatePasswordHash(ctx, authRecord.ID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, reset.UserID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", reset.UserID))

	return nil
}

// UpdatePassword changes the password after re-checking the current one.
func (srv *userService) UpdatePassword(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePasswordInput) error {
	authRecord, err := srv.authRepo.FindAuthenticationByUserID(ctx, userID, entity.ProviderTypeEmail)
	if err != nil {
		return translateNotFound(err, repository.ErrAuthNotFound, domainerrors.ErrUserNotFound, "failed to find authentication")
	}

	if !srv.hasher.Check(input.CurrentPassword, authRecord.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("current password does not match")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.authRepo.UpdatePasswordHash(ctx, authRecord.ID, hashedPassword); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	return nil
}

// UpdateDisplayName renames the account and keeps a stored profile in step.
func (srv *userService) UpdateDisplayName(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("display name is required")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}

		if err := userRepo.UpdateName(ctx, userID, name); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user.Name = name

		profileRepo := repoFactory.NewProfileRepository()
		profile, err := profileRepo.FindByUserID(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrProfileNotFound):
		case err != nil:
			return errors.Wrap(err, "failed to find profile")
		default:
			profile.DisplayName = name
			if err := profileRepo.Save(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute display name transaction")
	}

	return updated, nil
}

// CurrentPrincipal returns the signed-in account.
func (srv *userService) CurrentPrincipal(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	return user, nil
}

// rolesOf reads the profile role for the token claims. The customer role is
// assumed when no profile is stored or the lookup fails.
func (srv *userService) rolesOf(ctx context.Context, userID uuid.UUID) entity.Roles {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Failed to load profile for token roles", slog.Any("userID", userID), slog.Any("error", err))
		}

		return entity.Roles{entity.RoleCustomer}
	}

	return entity.Roles{profile.Role}
}

func (srv *userService) issueTokens(ctx context.Context, userID uuid.UUID, roles entity.Roles) (string, string, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, roles.ToStrings())
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, srv.newRefreshToken(userID, refreshToken)); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}

func (srv *userService) newRefreshToken(userID uuid.UUID, token string) *entity.RefreshToken {
	return &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(token),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
}
