package handler

import (
	"net/http"

	"traiteur/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness checks.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
