package carbonevent

import "errors"

var (
	// ErrNotFound is returned when no event has the requested id.
	ErrNotFound = errors.New("carbon event not found")
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEstimateFailed is returned when the carbon estimate could not be obtained.
	ErrEstimateFailed = errors.New("carbon estimate failed")
)
