package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artbay/backend/internal/port"
)

type paymentProviderMock struct {
	CreateIntentFunc func(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error)
	requests         []port.CreateIntentRequest
}

func (m *paymentProviderMock) CreateIntent(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error) {
	m.requests = append(m.requests, req)
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, req)
	}
	return port.CreateIntentResponse{}, nil
}

func TestCreateIntent_PassesThrough(t *testing.T) {
	provider := &paymentProviderMock{
		CreateIntentFunc: func(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error) {
			return port.CreateIntentResponse{ClientSecret: "pi_1_secret_abc"}, nil
		},
	}

	s := NewPaymentsImpl(provider)
	resp, err := s.CreateIntent(context.Background(), port.CreateIntentRequest{Amount: 2000, Currency: "usd"})

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_abc", resp.ClientSecret)
	require.Len(t, provider.requests, 1)
	assert.Equal(t, int64(2000), provider.requests[0].Amount)
	assert.Equal(t, "usd", provider.requests[0].Currency)
}

func TestCreateIntent_ProviderFault(t *testing.T) {
	provider := &paymentProviderMock{
		CreateIntentFunc: func(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error) {
			return port.CreateIntentResponse{}, errors.New("amount must be positive")
		},
	}

	s := NewPaymentsImpl(provider)
	_, err := s.CreateIntent(context.Background(), port.CreateIntentRequest{Amount: -5, Currency: "usd"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be positive")
}
