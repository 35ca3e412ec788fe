package check_availability

import (
	"context"
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// BookingRepository is the bookings lookup the engine reads from
type BookingRepository interface {
	// GetByDate returns the bookings of one tour date; cancelled rows are
	// excluded unless includeInactive is set
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error)
}

// RulesRepository loads active availability rules, fresh per request
type RulesRepository interface {
	ListActive(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

// PricingRepository loads active pricing rules
type PricingRepository interface {
	ListActive(ctx context.Context) ([]*domain.PricingRule, error)
}

// VehicleRepository loads the eligible fleet
type VehicleRepository interface {
	ListEligible(ctx context.Context) ([]*domain.Vehicle, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the usecase needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
