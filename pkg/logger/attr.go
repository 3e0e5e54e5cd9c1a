package logger

import (
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Typed attribute helpers keep log field names consistent across packages.

// Error returns a standard error attribute. Nil errors produce an empty value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// UserID returns a user identifier attribute.
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// NotificationID returns a notification identifier attribute.
func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// Category returns a notification category attribute.
func Category(c notification.Category) slog.Attr {
	return slog.String("category", string(c))
}

// Severity returns a notification severity attribute.
func Severity(s notification.Severity) slog.Attr {
	return slog.String("severity", string(s))
}

// Channel returns a delivery channel attribute.
func Channel(c notification.Channel) slog.Attr {
	return slog.String("channel", string(c))
}
