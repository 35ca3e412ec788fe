package models

import (
	"errors"
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is not a known booking status.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest carries the optional reason for a cancellation.
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellation_reason"`
}

// ListBookingsRequest filters the staff booking listing.
type ListBookingsRequest struct {
	StartDate       *time.Time `json:"from,omitempty"`
	EndDate         *time.Time `json:"to,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"include_inactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is the API shape of a booking.
type BookingResponse struct {
	ID                 int64    `json:"id"`
	TourDate           string   `json:"tour_date"`
	StartTime          string   `json:"start_time"`
	EndTime            string   `json:"end_time"`
	DurationHours      int      `json:"duration_hours"`
	PartySize          int      `json:"party_size"`
	VehicleID          *int64   `json:"vehicle_id,omitempty"`
	Status             string   `json:"status"`
	TotalPrice         float64  `json:"total_price"`
	DepositRequired    float64  `json:"deposit_required"`
	CustomerID         int64    `json:"customer_id"`
	CustomerName       *string  `json:"customer_name,omitempty"`
	CustomerEmail      *string  `json:"customer_email,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	CancellationReason *string  `json:"cancellation_reason,omitempty"`
	CancelledAt        *string  `json:"cancelled_at,omitempty"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

// BookingListResponse wraps a listing with its count.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

// FromDomainBooking converts a domain booking into the response shape.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		TourDate:           b.TourDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		DurationHours:      b.DurationHours,
		PartySize:          b.PartySize,
		VehicleID:          b.VehicleID,
		Status:             string(b.Status),
		TotalPrice:         b.TotalPrice,
		DepositRequired:    b.DepositRequired,
		CustomerID:         b.CustomerID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		s := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &s
	}
	return resp
}

// FromDomainBookings converts a slice of domain bookings.
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Count: len(out)}
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
