package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// NotificationStore implements notification.Store on PostgreSQL. Read-flag
// and existence mutations are single conditional statements, so the
// compare-and-set semantics the engine requires come straight from the
// database rather than an application-level lock.
type NotificationStore struct {
	pool *pgxpool.Pool
}

// NewNotificationStore creates a notification store on the given pool.
func NewNotificationStore(pool *pgxpool.Pool) *NotificationStore {
	return &NotificationStore{pool: pool}
}

func (s *NotificationStore) Create(ctx context.Context, n notification.Notification) error {
	if n.ID == "" {
		return notification.ErrIDRequired
	}
	if n.UserID == "" {
		return notification.ErrUserIDRequired
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	channels := make([]string, len(n.DeliveredChannels))
	for i, c := range n.DeliveredChannels {
		channels[i] = string(c)
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO notifications (id, user_id, category, severity, title, message, is_read, read_at, created_at, delivered_channels)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		n.ID, n.UserID, string(n.Category), string(n.Severity), n.Title, n.Message, n.Read, n.ReadAt, n.CreatedAt, channels,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return notification.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert notification %s: %w", n.ID, err)
	}
	return nil
}

func (s *NotificationStore) Get(ctx context.Context, id string) (notification.Notification, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, user_id, category, severity, title, message, is_read, read_at, created_at, delivered_channels
		FROM notifications WHERE id = $1`, id)

	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.Notification{}, notification.ErrNotFound
		}
		return notification.Notification{}, fmt.Errorf("failed to get notification %s: %w", id, err)
	}
	return n, nil
}

func (s *NotificationStore) List(ctx context.Context, userID string) ([]notification.Notification, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, category, severity, title, message, is_read, read_at, created_at, delivered_channels
		FROM notifications WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	out := []notification.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *NotificationStore) MarkRead(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = now()
		WHERE id = $1 AND NOT is_read`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification %s as read: %w", id, err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// No row changed: either already read (idempotent no-op) or missing.
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check notification %s: %w", id, err)
	}
	if !exists {
		return false, notification.ErrNotFound
	}
	return false, nil
}

func (s *NotificationStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}

func (s *NotificationStore) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `
		SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var (
		n        notification.Notification
		category string
		severity string
		channels []string
	)
	if err := row.Scan(&n.ID, &n.UserID, &category, &severity, &n.Title, &n.Message, &n.Read, &n.ReadAt, &n.CreatedAt, &channels); err != nil {
		return notification.Notification{}, err
	}
	n.Category = notification.Category(category)
	n.Severity = notification.Severity(severity)
	for _, c := range channels {
		n.DeliveredChannels = append(n.DeliveredChannels, notification.Channel(c))
	}
	return n, nil
}
