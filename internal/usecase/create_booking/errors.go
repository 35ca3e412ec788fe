package create_booking

import "errors"

var (
	// ErrInvalidInput is returned when the request is malformed or out of range
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate is returned when the tour date is in the past
	ErrInvalidDate = errors.New("create_booking: invalid tour date")

	// ErrDateBlocked is returned when the date falls in an active blackout
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrDailyCapReached is returned when the date already carries the
	// maximum number of bookings
	ErrDailyCapReached = errors.New("create_booking: daily booking limit reached")

	// ErrInvalidTimeSlot is returned when the start time is not a valid
	// candidate slot for the duration
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable is returned when the requested slot is over the
	// concurrency ceiling
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrNoSuitableVehicle is returned when no eligible vehicle fits the party
	ErrNoSuitableVehicle = errors.New("create_booking: no suitable vehicle")

	// ErrCustomerNotFound is returned when the CRM has no such customer
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrSlotJustTaken is returned when a concurrent request won the slot
	// between our check and commit. The caller should re-run the
	// availability check and retry; the usecase never retries internally.
	ErrSlotJustTaken = errors.New("create_booking: slot no longer available, please retry")

	// ErrInternal is returned on dependency failures
	ErrInternal = errors.New("create_booking: internal error")
)
