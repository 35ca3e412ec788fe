package create_booking

import (
	"fmt"
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// validateRequest checks the request fields against the booking constraints
func validateRequest(req *Request, maxPartySize int) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start_time format: %v", ErrInvalidInput, err)
	}

	if !domain.AllowedDuration(req.DurationHours) {
		return fmt.Errorf("%w: duration_hours must be one of %v", ErrInvalidInput, domain.AllowedDurations)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > maxPartySize {
		return fmt.Errorf("%w: party_size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, maxPartySize)
	}

	if req.VehicleType != nil && !domain.KnownVehicleType(*req.VehicleType) {
		return fmt.Errorf("%w: unknown vehicle_type %q", ErrInvalidInput, *req.VehicleType)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate rejects dates before today
func validateDate(date, now time.Time) error {
	if domain.Midnight(date).Before(domain.Midnight(now)) {
		return ErrInvalidDate
	}
	return nil
}
