package domain

// Business hours: tours run between 09:00 and 18:00, slots start on the hour.
const (
	BusinessOpenHour  = 9
	BusinessCloseHour = 18
)

// Defaults applied when no active rule of the matching type exists.
// Missing configuration is never an error.
const (
	DefaultMaxConcurrentBookings = 3
	DefaultMaxDailyBookings      = 5
	DefaultBufferMinutes         = 120
)

// Quote derivation rates
const (
	GratuityRate = 0.15
	TaxRate      = 0.09
	DepositRate  = 0.5
)

// Booking request constraints
const (
	MinPartySize                  = 1
	DefaultMaxPartySize           = 14
	DefaultVehicleTypePartyCutoff = 4
	MaxNotesLength                = 500
	MaxCancellationReasonLength   = 500
)

// AllowedDurations are the tour lengths the platform sells, in hours.
var AllowedDurations = []int{4, 6, 8}

// AllowedDuration reports whether hours is a sellable tour length.
func AllowedDuration(hours int) bool {
	for _, d := range AllowedDurations {
		if d == hours {
			return true
		}
	}
	return false
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
