package create_booking

import (
	"context"
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/integrations/crmservice"
)

// BookingRepository is the read/write booking surface of the create path
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByDate locks the date's rows FOR UPDATE when called inside the
	// serializable transaction
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error)
}

// RulesRepository loads active availability rules
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

// CRMServiceClient fetches the customer profile denormalized onto bookings
type CRMServiceClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*crmservice.Customer, error)
}

// TransactionManager serializes the re-check-and-insert against concurrent
// writers
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
