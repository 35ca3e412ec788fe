package create_booking

import (
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/types"
)

// Request creates one tour booking at an explicit start time
type Request struct {
	Date          time.Time
	StartTime     types.TimeString
	DurationHours int
	PartySize     int
	VehicleType   *domain.VehicleType // optional, defaulted from party size
	CustomerID    int64               // CRM contact the booking is for
	Notes         *string
}

// Response is the created booking with its fixed quote
type Response struct {
	ID            int64
	TourDate      time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	PartySize     int
	VehicleID     int64
	VehicleType   domain.VehicleType
	Status        string

	Pricing domain.Quote

	CustomerName  *string
	CustomerEmail *string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
