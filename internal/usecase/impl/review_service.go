package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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

type reviewService struct {
	reviewRepo      repository.ReviewRepository
	orderRepo       repository.OrderRepository
	appointmentRepo repository.AppointmentRepository
	metrics         service.Metrics
	logger          *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo      repository.ReviewRepository
	OrderRepo       repository.OrderRepository
	AppointmentRepo repository.AppointmentRepository
	Metrics         service.Metrics
	Logger          *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:      params.ReviewRepo,
		orderRepo:       params.OrderRepo,
		appointmentRepo: params.AppointmentRepo,
		metrics:         params.Metrics,
		logger:          params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit accepts a review of a received order or completed appointment that the
// author owns in the given shop. The duplicate check is advisory: concurrent
// submissions can both pass it.
func (srv *reviewService) Submit(ctx context.Context, session *entity.Session, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	itemType, ok := entity.ParseReviewItemType(input.ItemType)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown item type %q", input.ItemType))
	}

	if err := srv.checkReviewable(ctx, session.PrincipalID, input.ShopID, input.ItemID, itemType); err != nil {
		return nil, err
	}

	exists, err := srv.reviewRepo.Exists(ctx, input.ItemID, session.PrincipalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing review")
	}
	if exists {
		return nil, domainerrors.ErrReviewAlreadyExists.WrapMessage("item already reviewed by this principal")
	}

	review := &entity.Review{
		AuthorID: session.PrincipalID,
		ShopID:   input.ShopID,
		ItemID:   input.ItemID,
		ItemType: itemType,
		Rating:   input.Rating,
		Comment:  strings.TrimSpace(input.Comment),
	}
	if session.Profile != nil {
		review.AuthorName = session.Profile.DisplayName
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.metrics.ReviewSubmitted(string(itemType))
	srv.log(ctx).Info("Review submitted", slog.Any("reviewID", review.ID), slog.Any("itemID", review.ItemID), slog.Float64("rating", review.Rating))

	return review, nil
}

func (srv *reviewService) checkReviewable(ctx context.Context, authorID, shopID, itemID uuid.UUID, itemType entity.ReviewItemType) error {
	if itemType == entity.ReviewItemOrder {
		order, err := srv.orderRepo.FindByID(ctx, itemID)
		if err != nil {
			return translateNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find reviewed order")
		}
		if order.ShopID != shopID || !order.IsCustomer(authorID) || order.Status != entity.OrderReceived {
			return domainerrors.ErrReviewNotAllowed.WrapMessage("only received orders of the author can be reviewed")
		}

		return nil
	}

	appointment, err := srv.appointmentRepo.FindByID(ctx, itemID)
	if err != nil {
		return translateNotFound(err, repository.ErrAppointmentNotFound, domainerrors.ErrAppointmentNotFound, "failed to find reviewed appointment")
	}
	if appointment.ShopID != shopID || !appointment.IsCustomer(authorID) || appointment.Status != entity.AppointmentCompleted {
		return domainerrors.ErrReviewNotAllowed.WrapMessage("only completed appointments of the author can be reviewed")
	}

	return nil
}

// ReviewExists lets clients hide the review button.
func (srv *reviewService) ReviewExists(ctx context.Context, session *entity.Session, itemID uuid.UUID) (bool, error) {
	if err := requireSession(session); err != nil {
		return false, err
	}

	exists, err := srv.reviewRepo.Exists(ctx, itemID, session.PrincipalID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check existing review")
	}

	return exists, nil
}

func (srv *reviewService) ShopRating(ctx context.Context, shopID uuid.UUID) (*usecase.RatingOutput, error) {
	reviews, err := srv.reviewRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop reviews")
	}

	return &usecase.RatingOutput{Average: entity.AverageRating(reviews), Count: len(reviews)}, nil
}

func (srv *reviewService) ItemRating(ctx context.Context, itemID uuid.UUID) (*usecase.RatingOutput, error) {
	reviews, err := srv.reviewRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list item reviews")
	}

	return &usecase.RatingOutput{Average: entity.AverageRating(reviews), Count: len(reviews)}, nil
}

func (srv *reviewService) ListShopReviews(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop reviews")
	}

	return reviews, nil
}
