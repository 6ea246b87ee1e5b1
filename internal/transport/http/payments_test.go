package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artbay/backend/internal/port"
)

type paymentsMock struct {
	CreateIntentFunc func(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error)
	requests         []port.CreateIntentRequest
}

func (m *paymentsMock) CreateIntent(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error) {
	m.requests = append(m.requests, req)
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, req)
	}
	return port.CreateIntentResponse{}, nil
}

func postIntent(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCreatePaymentIntent_Success(t *testing.T) {
	payments := &paymentsMock{
		CreateIntentFunc: func(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error) {
			return port.CreateIntentResponse{ClientSecret: "pi_1_secret_abc"}, nil
		},
	}
	router := NewRouter(payments)

	rr := postIntent(t, router, `{"amount": 2000, "currency": "usd"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "pi_1_secret_abc", resp["client_secret"])

	require.Len(t, payments.requests, 1)
	assert.Equal(t, int64(2000), payments.requests[0].Amount)
	assert.Equal(t, "usd", payments.requests[0].Currency)
}

func TestCreatePaymentIntent_ProviderFault(t *testing.T) {
	payments := &paymentsMock{
		CreateIntentFunc: func(ctx context.Context, req port.CreateIntentRequest) (port.CreateIntentResponse, error) {
			return port.CreateIntentResponse{}, errors.New("no such currency: xyz")
		},
	}
	router := NewRouter(payments)

	rr := postIntent(t, router, `{"amount": 2000, "currency": "xyz"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "no such currency: xyz")
}

func TestCreatePaymentIntent_MalformedBody(t *testing.T) {
	payments := &paymentsMock{}
	router := NewRouter(payments)

	rr := postIntent(t, router, `{"amount": `)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.Empty(t, payments.requests)
}

func TestHealthz(t *testing.T) {
	router := NewRouter(&paymentsMock{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
