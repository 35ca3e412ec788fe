package create_booking

import (
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	createBooking "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/create_booking"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	DurationHours int     `json:"duration_hours"`
	PartySize     int     `json:"party_size"`
	VehicleType   *string `json:"vehicle_type,omitempty"`
	CustomerID    int64   `json:"customer_id"`
	Notes         *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID            int64            `json:"id"`
	TourDate      string           `json:"tour_date"`
	StartTime     string           `json:"start_time"`
	EndTime       string           `json:"end_time"`
	DurationHours int              `json:"duration_hours"`
	PartySize     int              `json:"party_size"`
	VehicleID     int64            `json:"vehicle_id"`
	VehicleType   string           `json:"vehicle_type"`
	Status        string           `json:"status"`
	Pricing       PricingBreakdown `json:"pricing"`
	CustomerID    int64            `json:"customer_id"`
	CustomerName  *string          `json:"customer_name,omitempty"`
	CustomerEmail *string          `json:"customer_email,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

// PricingBreakdown mirrors the quote fixed at creation time.
type PricingBreakdown struct {
	BasePrice        float64 `json:"base_price"`
	GratuityEstimate float64 `json:"gratuity_estimate"`
	Taxes            float64 `json:"taxes"`
	Total            float64 `json:"total"`
	DepositRequired  float64 `json:"deposit_required"`
}

// ToUseCaseRequest parses the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		Date:          date,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
		PartySize:     r.PartySize,
		CustomerID:    r.CustomerID,
		Notes:         r.Notes,
	}
	if r.VehicleType != nil {
		vt := domain.VehicleType(*r.VehicleType)
		req.VehicleType = &vt
	}

	return req, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response, customerID int64) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            resp.ID,
		TourDate:      resp.TourDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		DurationHours: resp.DurationHours,
		PartySize:     resp.PartySize,
		VehicleID:     resp.VehicleID,
		VehicleType:   string(resp.VehicleType),
		Status:        resp.Status,
		Pricing: PricingBreakdown{
			BasePrice:        resp.Pricing.BasePrice,
			GratuityEstimate: resp.Pricing.GratuityEstimate,
			Taxes:            resp.Pricing.Taxes,
			Total:            resp.Pricing.Total,
			DepositRequired:  resp.Pricing.DepositRequired,
		},
		CustomerID:    customerID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
