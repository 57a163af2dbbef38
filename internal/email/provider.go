package email

import (
	"context"

	"jobportal_backend/internal/logger"
)

// Provider sends outbound mail.
type Provider interface {
	// Send delivers a single message. The context bounds the whole dial
	// and send so a slow SMTP server cannot stall the caller.
	Send(ctx context.Context, email *Email) error

	// Close releases any provider resources.
	Close() error
}

// TemplateRenderer renders named html templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
}

// NoopProvider logs instead of sending. Used in development and tests.
type NoopProvider struct{}

func (p *NoopProvider) Send(_ context.Context, email *Email) error {
	logger.Info("email send skipped (noop provider)",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *NoopProvider) Close() error {
	return nil
}
