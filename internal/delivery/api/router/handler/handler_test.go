package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/validator"
	"autohub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newRequest builds an echo context for a JSON request, optionally carrying a session.
func newRequest(e *echo.Echo, method, target, body string, session *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		middleware.SetSession(c, session)
	}

	return c, rec
}

func customerSession() *entity.Session {
	id := uuid.New()

	return entity.NewSession(id, entity.NewDefaultProfile(id, "customer@example.com", "Customer"))
}

func ownerSession(shopID uuid.UUID) *entity.Session {
	id := uuid.New()

	return entity.NewSession(id, &entity.UserProfile{
		UserID:    id,
		Role:      entity.RoleShopOwner,
		ShopID:    &shopID,
		Persisted: true,
	})
}
