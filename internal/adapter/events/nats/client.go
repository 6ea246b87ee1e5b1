// Package nats subscribes to offer document-created events.
package nats

import (
	"context"
	"encoding/json"

	natspkg "github.com/nats-io/nats.go"

	"github.com/artbay/backend/internal/domain"
	"github.com/artbay/backend/internal/pkg/logger"
	"github.com/artbay/backend/internal/port"
)

// Client wraps the NATS connection carrying offer events.
type Client struct {
	nc *natspkg.Conn
}

func NewClient(url string) (*Client, error) {
	nc, err := natspkg.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Client{nc: nc}, nil
}

func (c *Client) Close() {
	c.nc.Close()
}

// Drain processes buffered messages and closes the connection.
func (c *Client) Drain() error {
	return c.nc.Drain()
}

func (c *Client) IsConnected() bool {
	return c.nc != nil && c.nc.Status() == natspkg.CONNECTED
}

// SubscribeOfferCreated delivers each offer-created event on subject to
// the notifier. Handler outcomes never propagate back to the bus: a bad
// or failed message is logged and dropped, not redelivered, and no
// ordering across messages is assumed.
func (c *Client) SubscribeOfferCreated(subject string, notifier port.Notifier) (*natspkg.Subscription, error) {
	return c.nc.Subscribe(subject, func(msg *natspkg.Msg) {
		handleOfferMsg(context.Background(), notifier, msg.Data)
	})
}

func handleOfferMsg(ctx context.Context, notifier port.Notifier, data []byte) port.DispatchOutcome {
	var evt domain.OfferCreated
	if err := json.Unmarshal(data, &evt); err != nil {
		logger.From(ctx).Warn("undecodable offer event", "error", err)
		return port.DispatchOutcome{
			Status: port.DispatchFailed,
			Reason: "decode event: " + err.Error(),
		}
	}
	outcome := notifier.HandleOfferCreated(ctx, evt)
	logger.From(ctx).Debug("offer event handled",
		"offer_id", evt.OfferID,
		"status", string(outcome.Status),
	)
	return outcome
}
