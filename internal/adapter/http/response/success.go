// Package response provides standardized HTTP response builders for the
// package pricing API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// Pricing writes a 200 OK response with a pricing result. A degraded result
// (some hotels on static fallback) is still a 200: a best-effort price beats
// an outright failure.
func Pricing(c echo.Context, result interface{}) error {
	return c.JSON(http.StatusOK, result)
}
