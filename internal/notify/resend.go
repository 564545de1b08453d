package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a Resend mailer. An empty baseURL keeps the SDK default.
func NewResendMailer(baseURL, apiKey, from string) *ResendMailer {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		// the SDK resolves "emails" against BaseURL, so it needs the trailing slash
		if u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/"); err == nil {
			client.BaseURL = u
		}
	}
	return &ResendMailer{client: client, from: from}
}

// Send implements Mailer.
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}
