package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the requested booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyCancelled is returned when cancelling a booking that is already cancelled.
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrNotCancellable is returned when the booking status does not allow cancellation.
	ErrNotCancellable = errors.New("booking cannot be cancelled in its current status")

	// ErrInternal wraps unexpected repository failures.
	ErrInternal = errors.New("internal error")
)
