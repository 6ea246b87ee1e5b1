package http

import (
	"encoding/json"
	"net/http"

	"github.com/artbay/backend/internal/pkg/logger"
	"github.com/artbay/backend/internal/port"
)

// PaymentHandler exposes the payment-intent endpoint.
type PaymentHandler struct {
	Payments port.Payments
}

type createIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateIntent forwards the request body to the payment provider. A
// server error carrying the fault's message is the endpoint's only
// error path; there is no separate validation status.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp, err := h.Payments.CreateIntent(r.Context(), port.CreateIntentRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		logger.From(r.Context()).Error("create payment intent failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"client_secret": resp.ClientSecret})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
