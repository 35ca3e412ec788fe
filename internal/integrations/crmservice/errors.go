package crmservice

import "errors"

var (
	// ErrCustomerNotFound is returned when the CRM has no such contact
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("crmservice client: internal error")

	// ErrInvalidResponse is returned on malformed CRM responses
	ErrInvalidResponse = errors.New("crmservice client: invalid response")

	// ErrServiceDegraded is returned when the CRM is unreachable and the
	// caller should proceed without the contact profile
	ErrServiceDegraded = errors.New("crmservice unavailable: graceful degradation applied")
)
