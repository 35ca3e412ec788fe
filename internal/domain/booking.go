package domain

import (
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/types"
)

// BookingStatus represents the status of a tour booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a wine-tour booking
type Booking struct {
	ID            int64
	TourDate      time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	PartySize     int
	VehicleID     *int64
	Status        BookingStatus

	// Denormalized quote, fixed at creation time
	TotalPrice      float64
	DepositRequired float64

	// CRM contact plus denormalized customer data
	CustomerID    int64
	CustomerName  *string
	CustomerEmail *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardCapacity reports whether the booking occupies vehicle/guide
// capacity at its time of day. Completed tours hold no vehicle anymore.
func (b *Booking) CountsTowardCapacity() bool {
	return b.Status != StatusCancelled && b.Status != StatusCompleted
}

// CountsTowardDailyCap reports whether the booking consumes the day-level
// staffing cap. A completed tour still consumed that day's staffing.
func (b *Booking) CountsTowardDailyCap() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter is the filter for admin booking listings
type BookingsFilter struct {
	StartDate       *time.Time     // period start (nil = unbounded)
	EndDate         *time.Time     // period end (nil = unbounded)
	Status          *BookingStatus // optional exact status
	IncludeInactive bool           // include cancelled bookings
}
