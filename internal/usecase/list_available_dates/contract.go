package list_available_dates

import (
	"context"
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// BookingRepository loads the month's bookings in one query
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RulesRepository loads active availability rules
type RulesRepository interface {
	ListActive(ctx context.Context) ([]*domain.AvailabilityRule, error)
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
