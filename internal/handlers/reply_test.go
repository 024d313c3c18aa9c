package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mailpilot/internal/analyzer"
	"mailpilot/internal/email"
	"mailpilot/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postReply(t *testing.T, handler echo.HandlerFunc, body string) (*httptest.ResponseRecorder, models.ReplyResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reply", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	var response models.ReplyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func TestReplyHandler_NotConfigured(t *testing.T) {
	// No SendGrid key means the endpoint reports unavailable, not an error
	sender := email.NewReplyService("", "")
	handler := ReplyHandler(analyzer.BaseReplyTable, sender)

	rec, response := postReply(t, handler, `{"text": "submit it", "to": "a@b.c"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Reply delivery not configured", response.Error)
}

func TestReplyHandler_MissingFields(t *testing.T) {
	sender := email.NewReplyService("SG.test-key", "")
	handler := ReplyHandler(analyzer.BaseReplyTable, sender)

	rec, response := postReply(t, handler, `{"text": "submit it"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Both text and to are required", response.Error)
}
