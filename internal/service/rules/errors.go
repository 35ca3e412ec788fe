package rules

import "errors"

var (
	// ErrInvalidInput is returned on malformed or out-of-range rule values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal wraps unexpected repository failures.
	ErrInternal = errors.New("internal error")
)
