package check_availability

import "errors"

var (
	// ErrInvalidInput is returned when the request is malformed or out of
	// range. Business unavailability is never an error here; it comes back
	// as a well-formed negative Response.
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidDate is returned when the requested date is in the past
	ErrInvalidDate = errors.New("check_availability: invalid tour date")

	// ErrInternal is returned when a rule, fleet or booking lookup fails.
	// The engine does not guess in the presence of missing data it cannot
	// default.
	ErrInternal = errors.New("check_availability: internal error")
)
