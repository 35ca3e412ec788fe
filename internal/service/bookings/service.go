package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/infra/storage/booking"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/bookings/models"
)

// Service handles staff-facing booking operations: lookup, listing and cancellation.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates a new booking service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID returns a single booking by its identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List returns bookings matching the filter, newest tour date first comes from storage ordering.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d bookings", len(bookings))
	return models.FromDomainBookings(bookings), nil
}

// Cancel marks a booking cancelled, recording the optional reason.
// Only pending and confirmed bookings can be cancelled.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	// 1. Load the booking to check its current status.
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to load booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// 2. Reject cancellation of terminal statuses.
	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", id)
		return nil, ErrAlreadyCancelled
	}
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d has status=%s, cannot cancel", id, booking.Status)
		return nil, ErrNotCancellable
	}

	// 3. Persist the cancellation.
	var reason string
	if req != nil {
		reason = req.CancellationReason
	}
	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// 4. Reload to return the updated record.
	cancelled, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return models.FromDomainBooking(cancelled), nil
}
