package port

import "context"

// CreateIntentRequest carries the amount in the currency's smallest
// unit and an ISO 4217 currency code. Values are forwarded to the
// provider as-is; the provider owns their validation.
type CreateIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateIntentResponse holds the client-usable secret the caller needs
// to complete the payment out-of-band.
type CreateIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// PaymentProvider creates payment intents with the external provider.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (CreateIntentResponse, error)
}

// Payments is the application-facing payment surface.
type Payments interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (CreateIntentResponse, error)
}
