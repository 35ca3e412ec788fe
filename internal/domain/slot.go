package domain

import "github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/types"

// TimeSlot is a candidate tour window inside business hours. Derived, never
// persisted; End is always Start plus the requested duration.
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// UnavailableReason is the machine-readable reason of a negative
// availability result. These are API values, not errors.
type UnavailableReason string

const (
	ReasonBlockedDate       UnavailableReason = "blocked_date"
	ReasonDailyCapReached   UnavailableReason = "daily_cap_reached"
	ReasonNoOpenSlots       UnavailableReason = "no_open_slots"
	ReasonNoSuitableVehicle UnavailableReason = "no_suitable_vehicle"
)
