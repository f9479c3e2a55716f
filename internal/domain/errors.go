package domain

import "errors"

var (
	// ErrListNotFound is returned when a shopping list does not exist
	ErrListNotFound = errors.New("shopping list not found")

	// ErrListAlreadyCompleted is returned when attempting to complete a list twice
	ErrListAlreadyCompleted = errors.New("shopping list already completed")

	// ErrTripNotFound is returned when a trip does not exist
	ErrTripNotFound = errors.New("trip not found")

	// ErrCheckoffSequenceNotFound is returned when learning is requested for a trip without a recorded sequence
	ErrCheckoffSequenceNotFound = errors.New("checkoff sequence not found")
)
