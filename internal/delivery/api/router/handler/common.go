// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"net/http"
	"strconv"

	"autohub/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

func noSession(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "No session for this request")
}

// limitQuery reads ?limit=, 0 when absent or malformed.
func limitQuery(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}

func messageResponse(c echo.Context, text string) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": text})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
