package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"mailpilot/internal/analyzer"
	"mailpilot/internal/email"
	"mailpilot/internal/models"

	"github.com/labstack/echo/v4"
)

// ReplyHandler suggests a reply for the pasted text and sends it via
// SendGrid
// @Summary Send the suggested auto-reply
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.ReplyRequest true "Email text and recipient"
// @Success 200 {object} models.ReplyResponse
// @Failure 400 {object} models.ReplyResponse
// @Failure 503 {object} models.ReplyResponse
// @Router /api/reply [post]
func ReplyHandler(replies analyzer.ReplyTable, sender *email.ReplyService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if sender == nil || !sender.Enabled() {
			return c.JSON(http.StatusServiceUnavailable, models.ReplyResponse{
				Error: "Reply delivery not configured",
			})
		}

		var req models.ReplyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ReplyResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}
		if strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.To) == "" {
			return c.JSON(http.StatusBadRequest, models.ReplyResponse{
				Error: "Both text and to are required",
			})
		}

		reply := replies.Suggest(req.Text)
		if err := sender.SendReply(req.To, reply); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ReplyResponse{
				Reply: reply,
				Error: fmt.Sprintf("Failed to send reply: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.ReplyResponse{
			Success: true,
			Reply:   reply,
			Message: "Reply sent",
		})
	}
}
