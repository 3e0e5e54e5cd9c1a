package notification

import (
	"context"
)

// Store handles notification persistence. Implementations must be safe for
// concurrent use; MarkRead must behave as an atomic compare-and-set on the
// read flag so that duplicate and racing calls converge to the same state.
type Store interface {
	// Create stores a new notification.
	Create(ctx context.Context, n Notification) error

	// Get retrieves a single notification by ID.
	Get(ctx context.Context, id string) (Notification, error)

	// List returns all notifications for a user, unordered. Read-side
	// ordering and filtering belong to the query layer.
	List(ctx context.Context, userID string) ([]Notification, error)

	// MarkRead flips the read flag. Returns true when this call performed
	// the transition, false when the notification was already read.
	// A missing ID yields ErrNotFound.
	MarkRead(ctx context.Context, id string) (bool, error)

	// Delete removes a notification permanently. A missing ID yields
	// ErrNotFound.
	Delete(ctx context.Context, id string) error

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID string) (int, error)
}
