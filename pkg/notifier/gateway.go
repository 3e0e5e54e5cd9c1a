package notifier

import (
	"context"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Gateway transmits notifications on one external channel. Gateways are
// collaborators outside the engine: they own transmission, retries, and
// delivery reporting. The engine only decides which channels receive a plan.
type Gateway interface {
	// Channel identifies the delivery channel this gateway serves.
	Channel() notification.Channel

	// Send transmits the notification. Failures are logged by the caller
	// and never fail the submit; the notification is already persisted.
	Send(ctx context.Context, n notification.Notification) error
}

// GatewayFunc adapts a function to the Gateway interface.
type GatewayFunc struct {
	Ch string
	Fn func(ctx context.Context, n notification.Notification) error
}

func (g GatewayFunc) Channel() notification.Channel { return notification.Channel(g.Ch) }

func (g GatewayFunc) Send(ctx context.Context, n notification.Notification) error {
	return g.Fn(ctx, n)
}

// NoOpGateway satisfies Gateway without transmitting anything. Useful in
// tests and for channels that are configured but not yet wired.
type NoOpGateway struct {
	Ch notification.Channel
}

func (g NoOpGateway) Channel() notification.Channel { return g.Ch }

func (g NoOpGateway) Send(ctx context.Context, n notification.Notification) error { return nil }
