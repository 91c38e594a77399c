package app

import (
	"sync"

	"visionvault_backend/internal/email"
	"visionvault_backend/internal/logger"
)

// MockEmailProvider records outgoing messages instead of delivering
// them. Used when SMTP is not configured and by the integration tests.
type MockEmailProvider struct {
	mu   sync.Mutex
	sent []*email.Message
}

func (m *MockEmailProvider) Send(msg *email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	logger.Info("mock email captured", "to", msg.To, "subject", msg.Subject)
	return nil
}

// Sent returns a copy of everything captured so far.
func (m *MockEmailProvider) Sent() []*email.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*email.Message, len(m.sent))
	copy(out, m.sent)
	return out
}
