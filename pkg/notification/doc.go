// Package notification defines the core domain model for the notification
// engine: the closed category/severity/channel sets, the Notification record,
// event ingestion, and the storage contract.
//
// # Data Model
//
// A Notification is immutable after creation except for its read flag, which
// only ever transitions from unread to read, and its existence (deletion is
// terminal). Category and severity are drawn from fixed closed sets; Ingest
// rejects anything outside them before any state is stored.
//
// # Basic Usage
//
//	notif, err := notification.Ingest(notification.Event{
//	    UserID:   "user-123",
//	    Category: notification.CategoryIncident,
//	    Severity: notification.SeverityCritical,
//	    Title:    "Perimeter breach",
//	    Message:  "Camera 7 reported motion in a restricted zone",
//	})
//	if err != nil {
//	    // malformed event, nothing was stored
//	}
//
// # Storage
//
// The Store interface abstracts persistence. MemoryStore is provided for
// development and tests; pkg/pgstore implements the same contract on
// PostgreSQL. Implementations must make MarkRead a compare-and-set on the
// read flag so concurrent duplicate calls converge without external locking.
package notification
