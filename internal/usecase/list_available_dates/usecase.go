package list_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/availability"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/ptr"
)

// Default assumptions for the month view: a date counts as available when a
// six-hour tour for a party of two, with no vehicle preference, has at least
// one open slot and a vehicle.
const (
	defaultDurationHours = 6
	defaultPartySize     = 2
)

// Year bounds keep obviously bogus input out of the month scan.
const (
	minYear = 2000
	maxYear = 2100
)

// UseCase lists the bookable dates of a calendar month
type UseCase struct {
	bookingRepo  BookingRepository
	rulesRepo    RulesRepository
	vehicleRepo  VehicleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the month listing usecase
func NewUseCase(
	bookingRepo BookingRepository,
	rulesRepo RulesRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rulesRepo:    rulesRepo,
		vehicleRepo:  vehicleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute scans the month day by day with rules, fleet and bookings all
// loaded once. Past dates are never listed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAvailableDates: year=%d, month=%d", req.Year, req.Month)

	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.Year < minYear || req.Year > maxYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}

	rules, err := uc.rulesRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("ListAvailableDates: failed to load rules: %v", err)
		return nil, fmt.Errorf("%w: failed to load rules: %v", ErrInternal, err)
	}

	vehicles, err := uc.vehicleRepo.ListEligible(ctx)
	if err != nil {
		uc.logger.Error("ListAvailableDates: failed to load fleet: %v", err)
		return nil, fmt.Errorf("%w: failed to load fleet: %v", ErrInternal, err)
	}

	firstDay := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(firstDay),
		EndDate:   ptr.Ptr(lastDay),
	})
	if err != nil {
		uc.logger.Error("ListAvailableDates: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	bookingsByDate := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		key := b.TourDate.Format(domain.DateFormat)
		bookingsByDate[key] = append(bookingsByDate[key], b)
	}

	capacity := availability.ResolveCapacity(rules)
	bufferMinutes := availability.ResolveBuffer(rules)
	slots := availability.GenerateSlots(defaultDurationHours)
	vehicle := availability.SelectVehicle(vehicles, defaultPartySize, nil)
	today := domain.Midnight(uc.timeProvider.Now())

	availableDates := make([]time.Time, 0, lastDay.Day())
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if day.Before(today) {
			continue
		}
		if vehicle == nil {
			continue
		}
		if availability.CheckBlackout(rules, day).Blocked {
			continue
		}

		dayBookings := bookingsByDate[day.Format(domain.DateFormat)]
		if availability.CountTowardDailyCap(dayBookings) >= capacity.MaxDailyBookings {
			continue
		}

		open := availability.FilterOpenSlots(slots, dayBookings, bufferMinutes, capacity.MaxConcurrentBookings)
		if len(open) == 0 {
			continue
		}

		availableDates = append(availableDates, day)
	}

	uc.logger.Info("ListAvailableDates: %d available dates in %d-%02d",
		len(availableDates), req.Year, req.Month)

	return &Response{
		Year:           req.Year,
		Month:          req.Month,
		AvailableDates: availableDates,
		Count:          len(availableDates),
	}, nil
}
