package check_availability

import (
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	checkAvailability "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/check_availability"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Date          string  `json:"date"`
	DurationHours int     `json:"duration_hours"`
	PartySize     int     `json:"party_size"`
	StartTime     *string `json:"start_time,omitempty"`
	VehicleType   *string `json:"vehicle_type,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available        bool              `json:"available"`
	Reason           string            `json:"reason,omitempty"`
	Message          string            `json:"message,omitempty"`
	Date             string            `json:"date"`
	AvailableTimes   []TimeSlot        `json:"available_times,omitempty"`
	SuggestedVehicle *VehicleSummary   `json:"suggested_vehicle,omitempty"`
	Pricing          *PricingBreakdown `json:"pricing,omitempty"`
}

// TimeSlot is one bookable start/end pair.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// VehicleSummary is the vehicle the engine would assign.
type VehicleSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// PricingBreakdown mirrors the quote the engine computed.
type PricingBreakdown struct {
	BasePrice        float64 `json:"base_price"`
	GratuityEstimate float64 `json:"gratuity_estimate"`
	Taxes            float64 `json:"taxes"`
	Total            float64 `json:"total"`
	DepositRequired  float64 `json:"deposit_required"`
}

// ToUseCaseRequest parses the HTTP request into the use case model.
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &checkAvailability.Request{
		Date:          date,
		DurationHours: r.DurationHours,
		PartySize:     r.PartySize,
	}

	if r.StartTime != nil {
		ts, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &ts
	}
	if r.VehicleType != nil {
		vt := domain.VehicleType(*r.VehicleType)
		req.VehicleType = &vt
	}

	return req, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	out := &CheckAvailabilityResponse{
		Available: resp.Available,
		Reason:    string(resp.Reason),
		Message:   resp.Message,
		Date:      resp.Date.Format(domain.DateFormat),
	}

	for _, slot := range resp.AvailableTimes {
		out.AvailableTimes = append(out.AvailableTimes, TimeSlot{
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
		})
	}
	if resp.SuggestedVehicle != nil {
		out.SuggestedVehicle = &VehicleSummary{
			ID:       resp.SuggestedVehicle.ID,
			Name:     resp.SuggestedVehicle.Name,
			Type:     string(resp.SuggestedVehicle.Type),
			Capacity: resp.SuggestedVehicle.Capacity,
		}
	}
	if resp.Pricing != nil {
		out.Pricing = FromDomainQuote(resp.Pricing)
	}

	return out
}

// FromDomainQuote converts a domain quote into the response shape.
func FromDomainQuote(q *domain.Quote) *PricingBreakdown {
	return &PricingBreakdown{
		BasePrice:        q.BasePrice,
		GratuityEstimate: q.GratuityEstimate,
		Taxes:            q.Taxes,
		Total:            q.Total,
		DepositRequired:  q.DepositRequired,
	}
}
