package bookings

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// BookingRepository is the storage surface the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger is the leveled logger used across services.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
