package handlers

import (
	"fmt"
	"net/http"
	"time"

	"mailpilot/internal/ics"
	"mailpilot/internal/models"
	"mailpilot/internal/store"

	"github.com/labstack/echo/v4"
)

// CalendarHandler lists all persisted calendar records
// @Summary List calendar records
// @Tags Calendar
// @Produce json
// @Success 200 {object} models.CalendarResponse
// @Failure 500 {object} models.CalendarResponse
// @Router /api/calendar [get]
func CalendarHandler(calendar *store.CalendarStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		records, err := calendar.Load()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.CalendarResponse{
				Error: fmt.Sprintf("Failed to load calendar: %v", err),
			})
		}

		if records == nil {
			records = []models.CalendarRecord{}
		}
		return c.JSON(http.StatusOK, models.CalendarResponse{Records: records})
	}
}

// CalendarExportHandler renders the calendar as an iCalendar file
// @Summary Export calendar as ICS
// @Tags Calendar
// @Produce plain
// @Success 200 {string} string "iCalendar data"
// @Failure 500 {object} models.CalendarResponse
// @Router /api/calendar.ics [get]
func CalendarExportHandler(calendar *store.CalendarStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		records, err := calendar.Load()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.CalendarResponse{
				Error: fmt.Sprintf("Failed to load calendar: %v", err),
			})
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="calendar.ics"`)
		return c.Blob(http.StatusOK, "text/calendar", []byte(ics.Export(records, time.Now())))
	}
}
