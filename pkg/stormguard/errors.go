package stormguard

import "errors"

var (
	// ErrStoreRequired is returned when creating a guard without a store.
	ErrStoreRequired = errors.New("stormguard: store is required")

	// ErrClientRequired is returned when creating a Redis store without a client.
	ErrClientRequired = errors.New("stormguard: redis client is required")

	// ErrInvalidLimit is returned when the limit is not positive.
	ErrInvalidLimit = errors.New("stormguard: limit must be greater than zero")

	// ErrInvalidWindow is returned when the window is not positive.
	ErrInvalidWindow = errors.New("stormguard: window must be greater than zero")
)
