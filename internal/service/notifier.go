package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/artbay/backend/internal/domain"
	"github.com/artbay/backend/internal/pkg/logger"
	"github.com/artbay/backend/internal/port"
)

var dispatchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "offer_notifications_total",
	Help: "Offer notification dispatch outcomes by status.",
}, []string{"status"})

// NotifierImpl implements the offer-created dispatch pipeline: resolve
// the recipient's push token, compose the message, deliver it.
type NotifierImpl struct {
	UserRepo port.UserRepository
	Sender   port.PushSender

	validate *validator.Validate
}

func NewNotifierImpl(userRepo port.UserRepository, sender port.PushSender) *NotifierImpl {
	return &NotifierImpl{
		UserRepo: userRepo,
		Sender:   sender,
		validate: validator.New(),
	}
}

// HandleOfferCreated runs the lookup-compose-send sequence for one
// offer-created event. Every fault is terminal for that event: it is
// logged, counted and folded into the outcome. Returning no error keeps
// the event source from re-delivering and looping.
func (s *NotifierImpl) HandleOfferCreated(ctx context.Context, evt domain.OfferCreated) port.DispatchOutcome {
	log := logger.From(ctx).With("offer_id", evt.OfferID)

	if err := s.validate.Struct(&evt); err != nil {
		log.Warn("malformed offer payload", "error", err)
		return s.done(port.DispatchOutcome{
			Status: port.DispatchFailed,
			Reason: "malformed payload: " + err.Error(),
		})
	}

	user, err := s.UserRepo.FindByID(ctx, evt.Offer.ToUserID)
	if err != nil {
		log.Error("user lookup failed", "user_id", evt.Offer.ToUserID, "error", err)
		return s.done(port.DispatchOutcome{
			Status: port.DispatchFailed,
			Reason: "user lookup: " + err.Error(),
		})
	}
	if user == nil || user.FCMToken == "" {
		log.Warn("recipient has no registered device", "user_id", evt.Offer.ToUserID)
		return s.done(port.DispatchOutcome{
			Status: port.DispatchSkipped,
			Reason: "no push token",
		})
	}

	title, body := ComposeOfferNotification(evt.Offer.ArtworkTitle, evt.Offer.Amount)

	deliveryID, err := s.Sender.Send(ctx, port.PushMessage{
		Title: title,
		Body:  body,
		Token: user.FCMToken,
	})
	if err != nil {
		log.Error("push delivery failed", "user_id", evt.Offer.ToUserID, "error", err)
		return s.done(port.DispatchOutcome{
			Status: port.DispatchFailed,
			Reason: "push delivery: " + err.Error(),
		})
	}

	log.Info("push notification delivered", "delivery_id", deliveryID)
	return s.done(port.DispatchOutcome{
		Status:     port.DispatchSent,
		DeliveryID: deliveryID,
	})
}

func (s *NotifierImpl) done(o port.DispatchOutcome) port.DispatchOutcome {
	dispatchOutcomes.WithLabelValues(string(o.Status)).Inc()
	return o
}

var _ port.Notifier = (*NotifierImpl)(nil)
