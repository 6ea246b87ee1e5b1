package port

import "context"

// PushMessage is the payload handed to the push transport. It is built
// fresh per dispatch and never persisted.
type PushMessage struct {
	Title string
	Body  string
	Token string
}

// PushSender delivers a single push message and returns the provider's
// delivery identifier.
type PushSender interface {
	Send(ctx context.Context, msg PushMessage) (string, error)
}
