// Package memory provides a log-only push sender for tests and local
// runs without Firebase credentials.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/artbay/backend/internal/pkg/logger"
	"github.com/artbay/backend/internal/port"
)

type SenderStub struct {
	mu   sync.Mutex
	sent []port.PushMessage
}

func NewSenderStub() *SenderStub {
	return &SenderStub{}
}

// Send records the message and fabricates a delivery identifier.
func (s *SenderStub) Send(ctx context.Context, msg port.PushMessage) (string, error) {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()

	id := uuid.NewString()
	logger.From(ctx).Info("push send (stub)",
		"delivery_id", id,
		"title", msg.Title,
		"token", msg.Token,
	)
	return id, nil
}

// Sent returns a copy of the messages delivered so far.
func (s *SenderStub) Sent() []port.PushMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]port.PushMessage, len(s.sent))
	copy(out, s.sent)
	return out
}

var _ port.PushSender = (*SenderStub)(nil)
