package mail

import (
	"context"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers messages through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
}

// NewSendGridSender creates a sender using the given API key. An empty key is
// accepted; SendGrid then rejects the request at send time rather than the
// process failing at startup.
func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
	}
}

// Send dispatches one message and waits for the provider's answer. A 4xx/5xx
// answer becomes a ProviderError carrying the response body.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	m := sgmail.NewSingleEmail(
		sgmail.NewEmail("", msg.From),
		msg.Subject,
		sgmail.NewEmail("", msg.To),
		msg.Text,
		msg.HTML,
	)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return &ProviderError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
	return nil
}
