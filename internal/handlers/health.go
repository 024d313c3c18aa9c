package handlers

import (
	"net/http"
	"time"

	"mailpilot/internal/models"
	"mailpilot/internal/store"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles basic health check requests
func HealthHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := models.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   version,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// StoreHealthHandler handles calendar store health check requests
func StoreHealthHandler(calendar *store.CalendarStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := models.StoreHealthResponse{
			Status:    "unknown",
			Timestamp: time.Now().UTC(),
		}

		if calendar == nil {
			response.Status = "unhealthy"
			response.Error = "Calendar store not initialized"
			return c.JSON(http.StatusServiceUnavailable, response)
		}

		records, err := calendar.Load()
		if err != nil {
			response.Status = "unhealthy"
			response.Error = err.Error()
			return c.JSON(http.StatusServiceUnavailable, response)
		}

		response.Status = "healthy"
		response.Records = len(records)
		return c.JSON(http.StatusOK, response)
	}
}

// RootHandler handles requests to the root endpoint
func RootHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Mailpilot API",
			"version": version,
			"status":  "running",
		})
	}
}
