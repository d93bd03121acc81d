// Package eventbus defines the publish/subscribe contract used to announce
// ledger changes after they are written.
package eventbus

import "context"

// Event is anything that can name its own type.
type Event interface {
	Type() string
}

// HandlerFunc processes a single event.
type HandlerFunc func(ctx context.Context, e Event) error

// Bus defines the contract for publishing and subscribing to events.
type Bus interface {
	Emit(ctx context.Context, event Event) error
	Register(eventType string, handler HandlerFunc)
}
