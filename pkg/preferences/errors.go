package preferences

import "errors"

var (
	// ErrUserIDRequired is returned when a store operation omits the user ID.
	ErrUserIDRequired = errors.New("user ID is required")
)
