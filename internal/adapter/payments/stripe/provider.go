// Package stripe creates PaymentIntents against the Stripe API.
package stripe

import (
	"context"

	stripeapi "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/artbay/backend/internal/port"
)

// Provider wraps a Stripe API client. The secret key is injected from
// configuration; it never lives in source.
type Provider struct {
	api *client.API
}

func NewProvider(secretKey string) *Provider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Provider{api: api}
}

// CreateIntent forwards amount and currency to Stripe unmodified and
// returns the intent's client secret. Stripe's error passes through
// verbatim so the caller can surface the provider's message.
func (p *Provider) CreateIntent(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error) {
	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(req.Amount),
		Currency: stripeapi.String(req.Currency),
	}
	params.Context = ctx
	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return port.CreateIntentResponse{}, err
	}
	return port.CreateIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

var _ port.PaymentProvider = (*Provider)(nil)
