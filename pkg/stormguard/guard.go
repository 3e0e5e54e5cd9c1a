package stormguard

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Guard caps how many notifications per (category, severity, time-bucket)
// enter external delivery, protecting downstream gateways from bursty event
// sources. Counting is a per-key atomic increment; no global mutex is held.
type Guard struct {
	store  Store
	limit  int
	window time.Duration
}

// New creates a storm guard allowing up to limit events per category and
// severity within each window.
func New(store Store, limit int, window time.Duration) (*Guard, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	return &Guard{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// Allow records one event and reports whether it is within the bucket's
// budget. The bucket is the window-aligned truncation of now, so counters
// reset at fixed boundaries rather than sliding.
func (g *Guard) Allow(ctx context.Context, category notification.Category, severity notification.Severity, now time.Time) (bool, error) {
	key := bucketKey(category, severity, now.Truncate(g.window))

	count, err := g.store.Increment(ctx, key, g.window)
	if err != nil {
		return false, fmt.Errorf("failed to increment storm counter: %w", err)
	}
	return count <= int64(g.limit), nil
}

func bucketKey(category notification.Category, severity notification.Severity, bucket time.Time) string {
	return fmt.Sprintf("storm:%s:%s:%d", category, severity, bucket.Unix())
}
