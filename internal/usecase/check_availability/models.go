package check_availability

import (
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/types"
)

// Request is an availability check for one tour
type Request struct {
	Date          time.Time           // requested tour date
	DurationHours int                 // 4, 6 or 8
	PartySize     int                 // number of guests
	StartTime     *types.TimeString   // optional: narrow to one start time
	VehicleType   *domain.VehicleType // optional: explicit vehicle preference
}

// Response is the composed availability decision. When Available is false,
// Reason and Message say why; the remaining fields are only set on success.
type Response struct {
	Available bool
	Reason    domain.UnavailableReason
	Message   string

	Date             time.Time
	AvailableTimes   []domain.TimeSlot
	SuggestedVehicle *domain.Vehicle
	Pricing          *domain.Quote
}

func unavailable(date time.Time, reason domain.UnavailableReason, message string) *Response {
	return &Response{
		Available: false,
		Reason:    reason,
		Message:   message,
		Date:      date,
	}
}
