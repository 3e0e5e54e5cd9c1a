package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/query"
)

// Manager owns the state transitions of stored notifications and the bulk
// read operation. All mutations delegate to the store's atomic operations,
// so concurrent duplicate calls converge without external locking.
type Manager struct {
	store  notification.Store
	logger *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for the Manager.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a lifecycle manager over the given store.
func NewManager(store notification.Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MarkRead transitions a notification to read. Idempotent: repeat calls
// succeed without error. A missing or deleted ID yields
// notification.ErrNotFound; a racing delete never resurrects the record.
func (m *Manager) MarkRead(ctx context.Context, id string) error {
	if _, err := m.store.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification %s as read: %w", id, err)
	}
	return nil
}

// MarkAllRead marks exactly the user's notifications matching the filter and
// view as read, and returns how many transitioned. Records outside the
// filtered scope are never touched. IDs deleted between the snapshot and the
// mutation are skipped after a debug log rather than failing the batch.
func (m *Manager) MarkAllRead(ctx context.Context, userID string, f query.Filter, v query.View, now time.Time) (int, error) {
	items, err := m.store.List(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}

	marked := 0
	for _, n := range query.Apply(items, f, v, now) {
		if n.Read {
			continue
		}
		changed, err := m.store.MarkRead(ctx, n.ID)
		if err != nil {
			if errors.Is(err, notification.ErrNotFound) {
				m.logger.LogAttrs(ctx, slog.LevelDebug, "skipping deleted notification in bulk read",
					slog.String("notification_id", n.ID),
				)
				continue
			}
			return marked, fmt.Errorf("failed to mark notification %s as read: %w", n.ID, err)
		}
		if changed {
			marked++
		}
	}
	return marked, nil
}

// Delete removes a notification permanently. Terminal: subsequent operations
// on the ID yield notification.ErrNotFound.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	return nil
}
