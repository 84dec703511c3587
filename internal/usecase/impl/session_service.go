package impl

import (
	"context"
	"log/slog"

	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	"autohub/internal/domain/repository"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveRole loads the principal's profile and picks the navigation path.
func (srv *sessionService) ResolveRole(ctx context.Context, principalID uuid.UUID) *entity.Session {
	profile, err := srv.profileRepo.FindByUserID(ctx, principalID)
	if err == nil {
		return entity.NewSession(principalID, profile)
	}

	if errors.Is(err, repository.ErrProfileNotFound) {
		srv.log(ctx).Debug("No stored profile, using default customer profile", slog.Any("principalID", principalID))

		return entity.NewSession(principalID, srv.defaultProfile(ctx, principalID))
	}

	// Fail open: an unreadable profile store must not lock the principal out.
	srv.log(ctx).Warn("Role resolution failed, falling back to customer",
		slog.Any("principalID", principalID),
		slog.Any("error", err),
	)

	session := entity.NewSession(principalID, entity.NewDefaultProfile(principalID, "", ""))
	session.Degraded = true

	return session
}

func (srv *sessionService) defaultProfile(ctx context.Context, principalID uuid.UUID) *entity.UserProfile {
	user, err := srv.userRepo.FindByID(ctx, principalID)
	if err != nil {
		srv.log(ctx).Debug("Principal lookup failed for default profile", slog.Any("principalID", principalID), slog.Any("error", err))

		return entity.NewDefaultProfile(principalID, "", "")
	}

	return entity.NewDefaultProfile(principalID, user.Email, user.Name)
}
