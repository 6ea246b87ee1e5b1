package service

import (
	"context"
	"fmt"

	"github.com/artbay/backend/internal/port"
)

// PaymentsImpl forwards payment-intent requests to the external
// provider. The service holds no state; the provider owns the created
// intent's lifecycle.
type PaymentsImpl struct {
	Provider port.PaymentProvider
}

func NewPaymentsImpl(provider port.PaymentProvider) *PaymentsImpl {
	return &PaymentsImpl{Provider: provider}
}

// CreateIntent passes amount and currency through unchanged. The
// provider's rejection is the only failure channel; invalid values
// surface as whatever error the provider returns.
func (s *PaymentsImpl) CreateIntent(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error) {
	resp, err := s.Provider.CreateIntent(ctx, req)
	if err != nil {
		return port.CreateIntentResponse{}, fmt.Errorf("create payment intent: %w", err)
	}
	return resp, nil
}

var _ port.Payments = (*PaymentsImpl)(nil)
