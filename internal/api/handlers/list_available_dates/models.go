package list_available_dates

import (
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	listAvailableDates "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/list_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Year           int      `json:"year"`
	Month          int      `json:"month"`
	AvailableDates []string `json:"available_dates"`
	Count          int      `json:"count"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *listAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, 0, len(resp.AvailableDates))
	for _, d := range resp.AvailableDates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &AvailableDatesResponse{
		Year:           resp.Year,
		Month:          resp.Month,
		AvailableDates: dates,
		Count:          resp.Count,
	}
}
