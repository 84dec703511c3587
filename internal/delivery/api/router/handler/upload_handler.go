package handler

import (
	"log/slog"
	"net/http"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	"autohub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler stores and serves images.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadImage stores the multipart "file" field under the "folder" form value.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file field")
	}

	file, err := header.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable file field")
	}
	defer file.Close()

	output, err := h.uploadUC.UploadImage(c.Request().Context(), session, &usecase.UploadInput{
		Folder:      usecase.UploadFolder(c.FormValue("folder")),
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, map[string]string{"url": output.URL})
}

// ServeImage streams a stored image; mounted at /images/*.
func (h *UploadHandler) ServeImage(c echo.Context) error {
	reader, contentType, err := h.uploadUC.OpenImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, reader)
}
