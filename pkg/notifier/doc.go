// Package notifier orchestrates the notification engine end to end: a raw
// event is validated and normalized, routed against the recipient's
// preference profile, persisted unconditionally, fanned out in-app, and
// handed to external gateways per the computed delivery plan.
//
// # Data Flow
//
//	event -> Ingest -> Decide(profile) -> store -> feed (in-app)
//	                                            -> gateways (external, best effort)
//
// # Basic Usage
//
//	manager := notifier.New(
//	    notification.NewMemoryStore(),
//	    preferences.NewMemoryStore(),
//	    notifier.WithFeed(feed.New(16)),
//	    notifier.WithGateways(emailGateway, smsGateway),
//	)
//
//	n, plan, err := manager.Submit(ctx, notification.Event{
//	    UserID:   "user-123",
//	    Category: notification.CategorySensor,
//	    Severity: notification.SeverityWarning,
//	    Title:    "Sensor offline",
//	    Message:  "Air quality sensor 12 stopped reporting",
//	})
//
// The notification is stored even when every channel is suppressed; the plan
// records why channels were stripped. Gateway transmission failures are
// logged and never fail Submit.
package notifier
