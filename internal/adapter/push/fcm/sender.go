// Package fcm delivers push messages through Firebase Cloud Messaging.
package fcm

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/artbay/backend/internal/pkg/circuitbreaker"
	"github.com/artbay/backend/internal/port"
)

// ErrCircuitOpen is returned when the breaker is rejecting sends after
// repeated provider failures. It is a delivery fault like any other:
// the caller logs it and drops the event.
var ErrCircuitOpen = errors.New("push provider circuit open")

// Sender sends notification messages addressed by device token.
type Sender struct {
	client  *messaging.Client
	breaker *circuitbreaker.Breaker
}

// NewSender initializes the Firebase app and messaging client once at
// process start. With an empty credentials file the SDK falls back to
// application default credentials.
func NewSender(ctx context.Context, credentialsFile string, breaker *circuitbreaker.Breaker) (*Sender, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}
	return &Sender{client: client, breaker: breaker}, nil
}

func (s *Sender) Send(ctx context.Context, msg port.PushMessage) (string, error) {
	if s.breaker != nil && !s.breaker.Allow() {
		return "", ErrCircuitOpen
	}
	id, err := s.client.Send(ctx, &messaging.Message{
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Token: msg.Token,
	})
	if err != nil {
		if s.breaker != nil {
			s.breaker.RecordFailure()
		}
		return "", fmt.Errorf("fcm send: %w", err)
	}
	if s.breaker != nil {
		s.breaker.RecordSuccess()
	}
	return id, nil
}

var _ port.PushSender = (*Sender)(nil)
