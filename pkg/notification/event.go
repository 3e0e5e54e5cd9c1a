package notification

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/validate"
)

// Limits applied during ingestion. Title and message text arrives from an
// upstream content generator and is treated as opaque, but unbounded blobs
// are still rejected.
const (
	maxTitleLen   = 200
	maxMessageLen = 2000
)

// Event is a raw inbound event before normalization. CreatedAt is optional;
// a zero value is stamped with the current time during ingestion.
type Event struct {
	UserID    string    `json:"user_id"`
	Category  Category  `json:"category"`
	Severity  Severity  `json:"severity"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Validate checks the event against the closed enum sets and field limits.
// Returns validate.ValidationErrors describing every failure, or nil.
func (e Event) Validate() error {
	return validate.Apply(
		validate.Required("user_id", e.UserID),
		validate.InList("category", e.Category, Categories()),
		validate.InList("severity", e.Severity, Severities()),
		validate.Required("title", e.Title),
		validate.MaxLen("title", e.Title, maxTitleLen),
		validate.MaxLen("message", e.Message, maxMessageLen),
	)
}

// Ingest validates and normalizes a raw event into a canonical Notification.
// Nothing is persisted here; rejection happens before any state is stored.
func Ingest(e Event) (Notification, error) {
	if err := e.Validate(); err != nil {
		return Notification{}, err
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return Notification{
		ID:        uuid.New().String(),
		UserID:    e.UserID,
		Category:  e.Category,
		Severity:  e.Severity,
		Title:     strings.TrimSpace(e.Title),
		Message:   strings.TrimSpace(e.Message),
		CreatedAt: createdAt,
	}, nil
}
