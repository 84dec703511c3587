package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"autohub/internal/domain/entity"
	"autohub/internal/domain/service"
	mockSvc "autohub/internal/mocks/service"
	mockUc "autohub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService, *mockUc.MockSessionUsecase) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	sessionUC := mockUc.NewMockSessionUsecase(t)

	return NewAuthMiddleware(tokenSvc, sessionUC, slog.New(slog.NewTextHandler(io.Discard, nil))), tokenSvc, sessionUC
}

func serve(t *testing.T, handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	return rec
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m, _, _ := newAuthFixture(t)

	rec := serve(t, m.Authenticate(func(c echo.Context) error {
		t.Fatal("next must not run")

		return nil
	}), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthenticate_RejectsInvalidAndRefreshTokens(t *testing.T) {
	m, tokenSvc, _ := newAuthFixture(t)

	tokenSvc.EXPECT().ValidateToken("broken").Return(nil, errors.New("signature invalid"))
	tokenSvc.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)

	next := func(c echo.Context) error {
		t.Fatal("next must not run")

		return nil
	}

	for _, token := range []string{"broken", "refresh"} {
		rec := serve(t, m.Authenticate(next), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, token)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	}
}

func TestAuthenticate_StoresResolvedSession(t *testing.T) {
	m, tokenSvc, sessionUC := newAuthFixture(t)

	userID := uuid.New()
	shopID := uuid.New()
	session := entity.NewSession(userID, &entity.UserProfile{UserID: userID, Role: entity.RoleShopOwner, ShopID: &shopID})

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"customer"}, Type: service.TokenTypeAccess}, nil)
	sessionUC.EXPECT().ResolveRole(mock.Anything, userID).Return(session)

	var seen *entity.Session
	rec := serve(t, m.Authenticate(func(c echo.Context) error {
		got, ok := GetSession(c)
		require.True(t, ok)
		seen = got

		id, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, id)

		return c.NoContent(http.StatusNoContent)
	}), "Bearer good")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Same(t, session, seen)
}

func TestRequireRole(t *testing.T) {
	m, _, _ := newAuthFixture(t)

	ownerID := uuid.New()
	shopID := uuid.New()
	owner := entity.NewSession(ownerID, &entity.UserProfile{UserID: ownerID, Role: entity.RoleShopOwner, ShopID: &shopID})
	customerID := uuid.New()
	customer := entity.NewSession(customerID, entity.NewDefaultProfile(customerID, "c@example.com", "C"))

	tests := []struct {
		name    string
		session *entity.Session
		want    int
	}{
		{name: "shop owner passes", session: owner, want: http.StatusNoContent},
		{name: "customer is forbidden", session: customer, want: http.StatusForbidden},
		{name: "no session is forbidden", session: nil, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := m.RequireRole(entity.RoleShopOwner)(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})

			rec := serve(t, func(c echo.Context) error {
				if tt.session != nil {
					SetSession(c, tt.session)
				}

				return handler(c)
			}, "")

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
