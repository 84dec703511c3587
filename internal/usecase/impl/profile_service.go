package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the stored profile, or a synthesised customer profile
// that is not persisted until the first save.
func (srv *profileService) GetProfile(ctx context.Context, session *entity.Session) (*entity.UserProfile, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, session.PrincipalID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	user, err := srv.userRepo.FindByID(ctx, session.PrincipalID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	return entity.NewDefaultProfile(user.ID, user.Email, user.Name), nil
}

// SaveProfile applies the supplied fields and upserts the profile.
func (srv *profileService) SaveProfile(ctx context.Context, session *entity.Session, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	profile, err := srv.GetProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("display name must not be empty")
		}
		profile.DisplayName = name
	}
	if input.Email != nil {
		profile.Email = normalizeEmail(*input.Email)
	}
	if input.Phone != nil {
		profile.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.ImageURL != nil {
		profile.ImageURL = strings.TrimSpace(*input.ImageURL)
	}

	if err := srv.profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.log(ctx).Debug("Profile saved", slog.Any("principalID", profile.UserID))

	return profile, nil
}

// BecomeShopOwner switches the principal to the shop owner role. The shop is
// created in a separate onboarding step.
func (srv *profileService) BecomeShopOwner(ctx context.Context, session *entity.Session) (*entity.UserProfile, error) {
	profile, err := srv.GetProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	if profile.IsShopOwner() && profile.Persisted {
		return profile, nil
	}

	profile.Role = entity.RoleShopOwner
	if err := srv.profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.log(ctx).Info("Principal became shop owner", slog.Any("principalID", profile.UserID))

	return profile, nil
}

// UpdatePushToken records the device registration token used for push delivery.
func (srv *profileService) UpdatePushToken(ctx context.Context, session *entity.Session, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("push token is required")
	}

	profile, err := srv.GetProfile(ctx, session)
	if err != nil {
		return err
	}

	if !profile.Persisted {
		profile.PushToken = token
		if err := srv.profileRepo.Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	}

	if err := srv.profileRepo.UpdatePushToken(ctx, profile.UserID, token); err != nil {
		return errors.Wrap(err, "failed to update push token")
	}

	return nil
}
