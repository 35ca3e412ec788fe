package list_available_dates

import "errors"

var (
	// ErrInvalidInput is returned when year or month is out of range
	ErrInvalidInput = errors.New("list_available_dates: invalid input data")

	// ErrInternal is returned when a rule, fleet or booking lookup fails
	ErrInternal = errors.New("list_available_dates: internal error")
)
