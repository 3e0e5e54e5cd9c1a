package notifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/feed"
	"github.com/dmitrymomot/notifykit/pkg/lifecycle"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/preferences"
	"github.com/dmitrymomot/notifykit/pkg/query"
	"github.com/dmitrymomot/notifykit/pkg/routing"
	"github.com/dmitrymomot/notifykit/pkg/stormguard"
)

// Manager orchestrates the full notification flow: ingestion, the routing
// decision, persistence, in-app fan-out, and best-effort external dispatch.
type Manager struct {
	store     notification.Store
	prefs     preferences.Store
	lifecycle *lifecycle.Manager
	feed      *feed.Feed
	guard     *stormguard.Guard
	gateways  map[notification.Channel]Gateway
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for the Manager.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.logger = log
		}
	}
}

// WithFeed attaches the in-app realtime feed. Without one, in-app delivery
// is visible only through the polling query layer.
func WithFeed(f *feed.Feed) Option {
	return func(m *Manager) { m.feed = f }
}

// WithGuard attaches a storm guard. Guarded-out submits are still persisted
// and keep the in-app channel; only external fan-out is suppressed.
func WithGuard(g *stormguard.Guard) Option {
	return func(m *Manager) { m.guard = g }
}

// WithGateways registers external channel gateways. The last gateway wins
// when two serve the same channel.
func WithGateways(gateways ...Gateway) Option {
	return func(m *Manager) {
		for _, g := range gateways {
			m.gateways[g.Channel()] = g
		}
	}
}

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a notification manager over the given stores.
func New(store notification.Store, prefs preferences.Store, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		prefs:    prefs,
		gateways: make(map[notification.Channel]Gateway),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lifecycle = lifecycle.NewManager(store, lifecycle.WithLogger(m.logger))
	return m
}

// Submit ingests a raw event, routes it against the recipient's preferences,
// persists the resulting notification unconditionally, and dispatches the
// planned channels. Returns the stored notification and its delivery plan.
//
// Validation failures reject the event before any state is stored. Gateway
// failures are logged and never fail the submit; transmission retries belong
// to the gateways themselves.
func (m *Manager) Submit(ctx context.Context, e notification.Event) (notification.Notification, routing.Plan, error) {
	n, err := notification.Ingest(e)
	if err != nil {
		return notification.Notification{}, routing.Plan{}, err
	}

	profile, err := m.prefs.Get(ctx, n.UserID)
	if err != nil {
		return notification.Notification{}, routing.Plan{}, fmt.Errorf("failed to load preferences for user %s: %w", n.UserID, err)
	}

	now := m.now()
	plan := routing.Decide(n, profile, now)

	if m.guard != nil && hasExternal(plan) {
		allowed, err := m.guard.Allow(ctx, n.Category, n.Severity, now)
		if err != nil {
			// A broken guard never blocks delivery; count the event as allowed.
			m.logger.LogAttrs(ctx, slog.LevelWarn, "storm guard check failed, allowing delivery",
				logger.Category(n.Category),
				logger.Severity(n.Severity),
				logger.Error(err),
			)
		} else if !allowed {
			stripExternal(&plan)
			m.logger.LogAttrs(ctx, slog.LevelWarn, "storm guard suppressed external delivery",
				logger.NotificationID(n.ID),
				logger.Category(n.Category),
				logger.Severity(n.Severity),
			)
		}
	}

	n.DeliveredChannels = plan.ChannelList()

	if err := m.store.Create(ctx, n); err != nil {
		return notification.Notification{}, routing.Plan{}, fmt.Errorf("failed to store notification: %w", err)
	}

	if m.feed != nil && plan.Has(notification.ChannelInApp) {
		// Best effort; polling clients reconcile on their next tick.
		_ = m.feed.Publish(ctx, n)
	}

	m.dispatch(ctx, n, plan)
	return n, plan, nil
}

// dispatch hands the plan's external channels to their gateways.
func (m *Manager) dispatch(ctx context.Context, n notification.Notification, plan routing.Plan) {
	for _, ch := range plan.ChannelList() {
		if ch == notification.ChannelInApp {
			continue
		}
		gw, ok := m.gateways[ch]
		if !ok {
			m.logger.LogAttrs(ctx, slog.LevelDebug, "no gateway registered for planned channel",
				logger.NotificationID(n.ID),
				logger.Channel(ch),
			)
			continue
		}
		if err := gw.Send(ctx, n); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelWarn, "gateway delivery failed, notification already stored",
				logger.NotificationID(n.ID),
				logger.Channel(ch),
				logger.Error(err),
			)
		}
	}
}

// List returns the user's notifications through the given filter and view,
// newest first.
func (m *Manager) List(ctx context.Context, userID string, f query.Filter, v query.View) ([]notification.Notification, error) {
	items, err := m.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	return query.Apply(items, f, v, m.now()), nil
}

// Export writes the user's filtered notifications as CSV.
func (m *Manager) Export(ctx context.Context, w io.Writer, userID string, f query.Filter, v query.View) error {
	items, err := m.List(ctx, userID, f, v)
	if err != nil {
		return err
	}
	return query.Export(w, items)
}

// MarkRead transitions one notification to read. Idempotent.
func (m *Manager) MarkRead(ctx context.Context, id string) error {
	return m.lifecycle.MarkRead(ctx, id)
}

// MarkAllRead marks the user's notifications matching the filter and view as
// read, returning how many transitioned.
func (m *Manager) MarkAllRead(ctx context.Context, userID string, f query.Filter, v query.View) (int, error) {
	return m.lifecycle.MarkAllRead(ctx, userID, f, v, m.now())
}

// Delete removes a notification permanently.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.lifecycle.Delete(ctx, id)
}

// CountUnread returns the user's unread badge count.
func (m *Manager) CountUnread(ctx context.Context, userID string) (int, error) {
	return m.store.CountUnread(ctx, userID)
}

// Profile returns the user's preference profile, falling back to the
// conservative default when none is stored.
func (m *Manager) Profile(ctx context.Context, userID string) (preferences.Profile, error) {
	return m.prefs.Get(ctx, userID)
}

// SetProfile validates and stores a whole preference profile.
func (m *Manager) SetProfile(ctx context.Context, userID string, p preferences.Profile) error {
	return m.prefs.Set(ctx, userID, p)
}

func hasExternal(plan routing.Plan) bool {
	for ch := range plan.Channels {
		if ch != notification.ChannelInApp {
			return true
		}
	}
	return false
}

func stripExternal(plan *routing.Plan) {
	inApp := plan.Channels[notification.ChannelInApp]
	plan.Channels = make(map[notification.Channel]bool)
	if inApp {
		plan.Channels[notification.ChannelInApp] = true
	}
}
