package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// ReplyService sends suggested auto-replies via SendGrid
type ReplyService struct {
	apiKey    string
	fromEmail string
}

// NewReplyService creates a new reply service instance. An empty API key
// leaves the service disabled; asking it to send then fails cleanly.
func NewReplyService(apiKey, fromEmail string) *ReplyService {
	if fromEmail == "" {
		fromEmail = "noreply@mailpilot.local"
	}
	return &ReplyService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
	}
}

// Enabled reports whether an API key is configured.
func (rs *ReplyService) Enabled() bool {
	return rs.apiKey != ""
}

// SendReply sends the suggested reply text to the recipient
func (rs *ReplyService) SendReply(to, replyText string) error {
	if rs.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}
	if to == "" {
		return fmt.Errorf("recipient address is required")
	}

	from := mail.NewEmail("Mailpilot", rs.fromEmail)
	recipient := mail.NewEmail("", to)
	subject := "Re: your email"

	message := mail.NewSingleEmail(from, subject, recipient, replyText, replyText)

	client := sendgrid.NewSendClient(rs.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
