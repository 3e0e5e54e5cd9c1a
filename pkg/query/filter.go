package query

import (
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Filter is a conjunction of independent predicates. Each zero-valued field
// matches everything, so the zero Filter matches every notification.
type Filter struct {
	// Severity restricts to one severity; empty means all.
	Severity notification.Severity
	// Category restricts to one category; empty means all.
	Category notification.Category
	// Text is a case-insensitive substring matched against title OR message.
	Text string
	// From/To are inclusive bounds on CreatedAt; nil means unbounded.
	From *time.Time
	To   *time.Time
	// Unread restricts to unread notifications when true.
	Unread bool
}

// Match reports whether the notification satisfies every set predicate.
func (f Filter) Match(n notification.Notification) bool {
	if f.Severity != "" && n.Severity != f.Severity {
		return false
	}
	if f.Category != "" && n.Category != f.Category {
		return false
	}
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(n.Title), needle) &&
			!strings.Contains(strings.ToLower(n.Message), needle) {
			return false
		}
	}
	if f.From != nil && n.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && n.CreatedAt.After(*f.To) {
		return false
	}
	if f.Unread && n.Read {
		return false
	}
	return true
}

// View selects between the two standard read-side views.
type View string

const (
	// ViewRealtime restricts to notifications created within the last 24
	// hours relative to now.
	ViewRealtime View = "realtime"
	// ViewHistorical applies no implicit time bound; only the filter's
	// explicit date range restricts it.
	ViewHistorical View = "historical"
)

// realtimeWindow is the implicit age bound of the realtime view.
const realtimeWindow = 24 * time.Hour

// Apply filters the items through the filter and view, then sorts the result
// newest-first with ID descending as a deterministic tiebreak. The input
// slice is not modified.
func Apply(items []notification.Notification, f Filter, v View, now time.Time) []notification.Notification {
	out := make([]notification.Notification, 0, len(items))
	cutoff := now.Add(-realtimeWindow)

	for _, n := range items {
		if v == ViewRealtime && n.CreatedAt.Before(cutoff) {
			continue
		}
		if !f.Match(n) {
			continue
		}
		out = append(out, n)
	}

	slices.SortStableFunc(out, func(a, b notification.Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out
}
