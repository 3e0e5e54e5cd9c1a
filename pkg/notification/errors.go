package notification

import "errors"

var (
	// ErrNotFound is returned when an operation references a missing or
	// deleted notification. Non-fatal to callers; batch operations skip it.
	ErrNotFound = errors.New("notification not found")

	// ErrIDRequired is returned when storing a notification without an ID.
	ErrIDRequired = errors.New("notification ID is required")

	// ErrUserIDRequired is returned when storing a notification without a
	// recipient.
	ErrUserIDRequired = errors.New("notification user ID is required")

	// ErrAlreadyExists is returned when storing a notification whose ID is
	// already present.
	ErrAlreadyExists = errors.New("notification already exists")
)
