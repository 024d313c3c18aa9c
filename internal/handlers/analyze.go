package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"mailpilot/internal/analytics"
	"mailpilot/internal/analyzer"
	"mailpilot/internal/models"
	"mailpilot/internal/store"

	"github.com/labstack/echo/v4"
)

// Persistence outcomes reported to the caller.
const (
	SavedOutcome      = "saved"
	DuplicateOutcome  = "duplicate"
	NoDeadlineOutcome = "no-deadline"
	StoreErrorOutcome = "store-error"
)

// AnalyzeHandler runs the extraction pipeline over pasted email text and
// persists the result when a deadline was found
// @Summary Analyze a pasted email
// @Description Extract deadline, tags, sender, priority, reply and summary from raw email text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "Raw email text"
// @Success 200 {object} models.AnalyzeResponse
// @Failure 400 {object} models.AnalyzeResponse
// @Failure 500 {object} models.AnalyzeResponse
// @Router /api/analyze [post]
func AnalyzeHandler(pipeline *analyzer.Analyzer, calendar *store.CalendarStore, tracker *analytics.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.AnalyzeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if strings.TrimSpace(req.Text) == "" {
			return c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
				Error: "Text cannot be empty",
			})
		}

		result := pipeline.Analyze(c.Request().Context(), req.Text)

		saved := NoDeadlineOutcome
		if result.HasDeadline() {
			outcome, err := calendar.AppendIfNew(models.NewCalendarRecord(result))
			if err != nil {
				// A failed append is still a completed analysis.
				if tracker != nil {
					tracker.TrackAnalysis(result, StoreErrorOutcome)
				}
				return c.JSON(http.StatusInternalServerError, models.AnalyzeResponse{
					Result: &result,
					Error:  fmt.Sprintf("Failed to persist record: %v", err),
				})
			}
			saved = SavedOutcome
			if outcome == store.Duplicate {
				saved = DuplicateOutcome
			}
		}

		if tracker != nil {
			tracker.TrackAnalysis(result, saved)
		}

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Result: &result,
			Saved:  saved,
		})
	}
}

// AnalyticsHandler returns aggregate counters over processed emails
// @Summary Analysis counters
// @Tags Analysis
// @Produce json
// @Success 200 {object} models.AnalyticsSnapshot
// @Router /api/analytics [get]
func AnalyticsHandler(tracker *analytics.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, tracker.Snapshot())
	}
}
