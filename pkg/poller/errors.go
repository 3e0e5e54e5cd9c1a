package poller

import "errors"

var (
	// ErrInvalidInterval is returned when the polling interval is not positive.
	ErrInvalidInterval = errors.New("poller: interval must be greater than zero")

	// ErrTickFuncRequired is returned when no tick function is provided.
	ErrTickFuncRequired = errors.New("poller: tick function is required")
)
