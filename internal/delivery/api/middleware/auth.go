// Package middleware holds the echo middleware of the public API.
package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"autohub/internal/delivery/api/response"
	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	"autohub/internal/domain/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID  = "userID"
	keyRoles   = "roles"
	keySession = "session"
)

// AuthMiddleware validates access tokens and resolves the caller's session.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessionUC usecase.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessionUC: sessionUC, logger: logger}
}

// Authenticate requires a bearer access token and stores the resolved session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header must carry a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		ctx = deliverycontext.WithLogger(ctx, deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", claims.UserID.String())))
		c.SetRequest(c.Request().WithContext(ctx))

		session := m.sessionUC.ResolveRole(ctx, claims.UserID)
		if session.Degraded {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Serving request with a fallback customer session",
				slog.Any("userID", claims.UserID),
			)
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyRoles, claims.Roles)
		SetSession(c, session)

		return next(c)
	}
}

// RequireRole checks the role of the resolved profile rather than the token,
// so a role change takes effect without a new token.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := GetSession(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if session.Profile == nil || session.Profile.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	const prefix = "Bearer "

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))

	return token, token != ""
}

// GetUserID returns the authenticated principal.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles carried by the access token.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(keyRoles).([]string)

	return slices.Clone(roles), ok
}

// SetSession stores the session of the current request.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(keySession, session)
}

// GetSession returns the session resolved by Authenticate.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(keySession).(*entity.Session)

	return session, ok && session != nil
}
