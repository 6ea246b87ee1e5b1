package port

import (
	"context"

	"github.com/artbay/backend/internal/domain"
)

// DispatchStatus classifies the terminal result of one offer event.
type DispatchStatus string

const (
	// DispatchSent means the push provider acknowledged the message.
	DispatchSent DispatchStatus = "sent"
	// DispatchSkipped means the recipient has no registered device.
	// This is a normal outcome, not a fault.
	DispatchSkipped DispatchStatus = "skipped"
	// DispatchFailed covers malformed payloads, lookup errors and
	// delivery faults. Failures are logged and dropped, never retried.
	DispatchFailed DispatchStatus = "failed"
)

// DispatchOutcome is the typed result of handling one offer-created
// event. Faults are folded into the outcome instead of an error return
// so nothing escalates to the event source.
type DispatchOutcome struct {
	Status     DispatchStatus
	DeliveryID string
	Reason     string
}

// Notifier handles offer-created events.
type Notifier interface {
	HandleOfferCreated(ctx context.Context, evt domain.OfferCreated) DispatchOutcome
}
