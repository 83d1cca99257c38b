// Package mailer sends confirmation emails through SendGrid.
package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/byp-portal/backend/pkg/queue"
)

// Config holds sender identity and the SendGrid key.
type Config struct {
	FromAddress string
	FromName    string
	APIKey      string
}

// Mailer sends transactional email. With no API key configured it logs and
// drops, which keeps local development working without a SendGrid account.
type Mailer struct {
	client *sendgrid.Client
	cfg    Config
	logger *zap.Logger
}

// New creates a mailer.
func New(cfg Config, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Mailer{cfg: cfg, logger: logger}
	if cfg.APIKey != "" {
		m.client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return m
}

// Send delivers the confirmation email for a processed payment.
func (m *Mailer) Send(payload queue.EmailPayload) error {
	subject, body := compose(payload)
	if m.client == nil {
		m.logger.Info("email delivery disabled, dropping message",
			zap.String("to", payload.RecipientEmail),
			zap.String("subject", subject))
		return nil
	}

	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromAddress)
	to := mail.NewEmail(payload.RecipientName, payload.RecipientEmail)
	msg := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := m.client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	m.logger.Info("email sent",
		zap.String("to", payload.RecipientEmail),
		zap.String("kind", payload.Kind),
		zap.Int("status", resp.StatusCode))
	return nil
}

func compose(p queue.EmailPayload) (subject, body string) {
	rupees := float64(p.AmountPaid) / 100
	switch p.Kind {
	case queue.EmailKindDonation:
		subject = "Thank you for your donation"
		body = fmt.Sprintf(
			"Dear %s,\n\nThank you for your donation of INR %.2f.\nYour receipt number is %s.\n\nBharat Yuva Parliament",
			p.RecipientName, rupees, p.TokenNumber)
	default:
		subject = "Your registration is confirmed"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour registration is confirmed. We received INR %.2f.\nYour token number is %s. Please keep it for the event.\n\nBharat Yuva Parliament",
			p.RecipientName, rupees, p.TokenNumber)
	}
	return subject, body
}
