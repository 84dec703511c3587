package handler

import (
	"log/slog"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves reviews and ratings.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// SubmitReviewRequest rates an order or appointment.
type SubmitReviewRequest struct {
	ShopID   uuid.UUID `json:"shopId" validate:"required"`
	ItemID   uuid.UUID `json:"itemId" validate:"required"`
	ItemType string    `json:"itemType" validate:"required"`
	Rating   float64   `json:"rating" validate:"required"`
	Comment  string    `json:"comment" validate:"max=2000"`
}

// Submit publishes a review of the caller.
func (h *ReviewHandler) Submit(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	review, err := h.reviewUC.Submit(c.Request().Context(), session, &usecase.SubmitReviewInput{
		ShopID:   req.ShopID,
		ItemID:   req.ItemID,
		ItemType: req.ItemType,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newReviewView(review))
}

// ReviewExists tells the client whether to offer the review button.
func (h *ReviewHandler) ReviewExists(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	exists, err := h.reviewUC.ReviewExists(c.Request().Context(), session, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]bool{"exists": exists})
}

// ShopRating returns the average rating of a shop.
func (h *ReviewHandler) ShopRating(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	rating, err := h.reviewUC.ShopRating(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &RatingView{Average: rating.Average, Count: rating.Count})
}

// ItemRating returns the average rating of an order or appointment.
func (h *ReviewHandler) ItemRating(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	rating, err := h.reviewUC.ItemRating(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &RatingView{Average: rating.Average, Count: rating.Count})
}

// ListShopReviews lists the reviews of a shop, newest first.
func (h *ReviewHandler) ListShopReviews(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	reviews, err := h.reviewUC.ListShopReviews(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(reviews, newReviewView))
}
