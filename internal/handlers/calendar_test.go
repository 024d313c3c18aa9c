package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mailpilot/internal/models"
	"mailpilot/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendRecord(t *testing.T, calendar *store.CalendarStore, deadline, tags, sender string) {
	t.Helper()
	_, err := calendar.AppendIfNew(models.CalendarRecord{
		Deadline: deadline,
		Tags:     tags,
		Sender:   sender,
	})
	require.NoError(t, err)
}

func TestCalendarHandler(t *testing.T) {
	calendar := newTestCalendar(t)
	appendRecord(t, calendar, "June 21st, 2025", "Submission", "Prof. Rao")
	appendRecord(t, calendar, "July 2nd", "Meeting", "Alice")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, CalendarHandler(calendar)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Records, 2)
	assert.Equal(t, "June 21st, 2025", response.Records[0].Deadline)
	assert.Equal(t, "July 2nd", response.Records[1].Deadline)
}

func TestCalendarHandler_EmptyStore(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, CalendarHandler(newTestCalendar(t))(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Empty state renders as an empty list, not null
	assert.JSONEq(t, `{"records": []}`, rec.Body.String())
}

func TestCalendarExportHandler(t *testing.T) {
	calendar := newTestCalendar(t)
	appendRecord(t, calendar, "June 21st, 2025", "Submission", "Prof. Rao")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar.ics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, CalendarExportHandler(calendar)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
	assert.Contains(t, body, "BEGIN:VEVENT")
	assert.Contains(t, body, "SUMMARY:Submission")
}
