package notify

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Provider names accepted by New.
const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
	ProviderNone   = "none"
)

// Options configures every supported provider; only the selected one is read.
type Options struct {
	Provider  string
	From      string
	ResendKey string
	ResendURL string
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
}

// New picks a Mailer for the configured provider.
// A provider without credentials degrades to the disabled mailer so sends still succeed.
func New(opts Options) (Mailer, error) {
	switch strings.ToLower(opts.Provider) {
	case ProviderResend, "":
		if opts.ResendKey == "" {
			log.Println("[MAIL] RESEND_API_KEY not set, email disabled")
			return DisabledMailer{}, nil
		}
		return NewResendMailer(opts.ResendURL, opts.ResendKey, opts.From), nil
	case ProviderSMTP:
		if opts.SMTPHost == "" {
			log.Println("[MAIL] SMTP_HOST not set, email disabled")
			return DisabledMailer{}, nil
		}
		return NewSMTPMailer(opts.SMTPHost, opts.SMTPPort, opts.SMTPUser, opts.SMTPPass, opts.From), nil
	case ProviderNone:
		return DisabledMailer{}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", opts.Provider)
	}
}

// DisabledMailer logs and drops every message.
type DisabledMailer struct{}

// Send implements Mailer.
func (DisabledMailer) Send(_ context.Context, msg Message) error {
	log.Printf("[MAIL] disabled, skipping %q to %s", msg.Subject, msg.To)
	return nil
}
