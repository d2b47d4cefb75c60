package email

import (
	"apnajourney_backend/internal/logger"
)

// Provider sends transactional mail. Callers treat delivery as
// best-effort: failures are logged, never surfaced to the request.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// MockProvider logs instead of sending. Used in development and tests.
type MockProvider struct{}

func (m *MockProvider) Send(to, subject, htmlBody string) error {
	logger.Info("mock email", "to", to, "subject", subject)
	return nil
}
