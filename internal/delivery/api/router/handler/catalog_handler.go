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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves shops, services and spare parts.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ShopRequest is the body for creating or updating a shop.
type ShopRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Address     string `json:"address" validate:"max=500"`
	City        string `json:"city" validate:"max=100"`
	Phone       string `json:"phone" validate:"max=32"`
	Email       string `json:"email" validate:"omitempty,email"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

func (r *ShopRequest) input() *usecase.ShopInput {
	return &usecase.ShopInput{
		Title:       r.Title,
		Description: r.Description,
		Address:     r.Address,
		City:        r.City,
		Phone:       r.Phone,
		Email:       r.Email,
		ImageURL:    r.ImageURL,
	}
}

// ServiceRequest is the body for creating or updating a service.
type ServiceRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}

func (r *ServiceRequest) input() *usecase.ServiceInput {
	return &usecase.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Rating:      r.Rating,
		ImageURL:    r.ImageURL,
	}
}

// SparePartRequest is the body for creating or updating a spare part.
type SparePartRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"max=2000"`
	ImageURL        string `json:"imageUrl" validate:"omitempty,url"`
	Price           int64  `json:"price" validate:"gte=0"`
	ManageInventory bool   `json:"manageInventory"`
	Quantity        int    `json:"quantity" validate:"gte=0"`
	LowStockLimit   *int   `json:"lowStockLimit" validate:"omitempty,gte=0"`
}

func (r *SparePartRequest) input() *usecase.SparePartInput {
	return &usecase.SparePartInput{
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Price:           r.Price,
		ManageInventory: r.ManageInventory,
		Quantity:        r.Quantity,
		LowStockLimit:   r.LowStockLimit,
	}
}

// ListShops lists shops, optionally filtered by ?city= and ?q=.
func (h *CatalogHandler) ListShops(c echo.Context) error {
	shops, err := h.catalogUC.ListShops(c.Request().Context(), usecase.ShopQuery{
		City:  c.QueryParam("city"),
		Query: c.QueryParam("q"),
		Limit: limitQuery(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(shops, newShopView))
}

// GetShop returns a shop page.
func (h *CatalogHandler) GetShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	details, err := h.catalogUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newShopDetailsView(details))
}

// CreateShop finishes shop owner onboarding.
func (h *CatalogHandler) CreateShop(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	shop, err := h.catalogUC.CreateShop(c.Request().Context(), session, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newShopView(shop))
}

// UpdateShop edits the caller's shop.
func (h *CatalogHandler) UpdateShop(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	shop, err := h.catalogUC.UpdateShop(c.Request().Context(), session, shopID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newShopView(shop))
}

// DeleteShop removes the caller's shop.
func (h *CatalogHandler) DeleteShop(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	if err := h.catalogUC.DeleteShop(c.Request().Context(), session, shopID); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Shop deleted")
}

// ListServices lists the services of a shop.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	services, err := h.catalogUC.ListServices(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(services, newServiceView))
}

// GetService returns one service.
func (h *CatalogHandler) GetService(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	service, err := h.catalogUC.GetService(c.Request().Context(), serviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newServiceView(service))
}

// CreateService adds a service to the caller's shop.
func (h *CatalogHandler) CreateService(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	service, err := h.catalogUC.CreateService(c.Request().Context(), session, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newServiceView(service))
}

// UpdateService edits a service of the caller's shop.
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	service, err := h.catalogUC.UpdateService(c.Request().Context(), session, serviceID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newServiceView(service))
}

// DeleteService removes a service of the caller's shop.
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	if err := h.catalogUC.DeleteService(c.Request().Context(), session, serviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Service deleted")
}

// SearchSpareParts searches parts by ?q=, within ?shopId= when given.
func (h *CatalogHandler) SearchSpareParts(c echo.Context) error {
	query := usecase.SparePartQuery{Query: c.QueryParam("q"), Limit: limitQuery(c)}

	if raw := c.QueryParam("shopId"); raw != "" {
		shopID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
		}
		query.ShopID = &shopID
	}

	parts, err := h.catalogUC.SearchSpareParts(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(parts, newSparePartView))
}

// GetSparePart returns one spare part.
func (h *CatalogHandler) GetSparePart(c echo.Context) error {
	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid spare part ID")
	}

	part, err := h.catalogUC.GetSparePart(c.Request().Context(), partID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newSparePartView(part))
}

// CreateSparePart adds a part to the caller's shop.
func (h *CatalogHandler) CreateSparePart(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req SparePartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid spare part input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	part, err := h.catalogUC.CreateSparePart(c.Request().Context(), session, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newSparePartView(part))
}

// UpdateSparePart edits a part of the caller's shop.
func (h *CatalogHandler) UpdateSparePart(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid spare part ID")
	}

	var req SparePartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid spare part input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	part, err := h.catalogUC.UpdateSparePart(c.Request().Context(), session, partID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newSparePartView(part))
}

// DeleteSparePart removes a part of the caller's shop.
func (h *CatalogHandler) DeleteSparePart(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid spare part ID")
	}

	if err := h.catalogUC.DeleteSparePart(c.Request().Context(), session, partID); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Spare part deleted")
}
