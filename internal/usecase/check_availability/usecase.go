package check_availability

import (
	"context"
	"fmt"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/availability"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

const (
	msgDailyCapReached   = "the daily booking limit for this date has been reached"
	msgNoOpenSlots       = "no time slots are open for the requested duration"
	msgNoSuitableVehicle = "no suitable vehicle is available for this party size"
)

// UseCase answers "is this tour bookable, with which vehicle, at what
// price". Read-only and advisory: the create path re-runs the same checks
// under a serializable transaction before committing.
type UseCase struct {
	bookingRepo  BookingRepository
	rulesRepo    RulesRepository
	pricingRepo  PricingRepository
	vehicleRepo  VehicleRepository
	timeProvider TimeProvider
	maxPartySize int
	logger       Logger
}

// NewUseCase creates the availability check usecase
func NewUseCase(
	bookingRepo BookingRepository,
	rulesRepo RulesRepository,
	pricingRepo PricingRepository,
	vehicleRepo VehicleRepository,
	maxPartySize int,
	logger Logger,
) *UseCase {
	if maxPartySize <= 0 {
		maxPartySize = domain.DefaultMaxPartySize
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		rulesRepo:    rulesRepo,
		pricingRepo:  pricingRepo,
		vehicleRepo:  vehicleRepo,
		timeProvider: &RealTimeProvider{},
		maxPartySize: maxPartySize,
		logger:       logger,
	}
}

// Execute runs the availability pipeline: blackout, daily cap, slot
// generation, conflict filtering, vehicle selection, pricing. Any stage can
// terminate with a negative result; cheaper checks run first.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, duration=%dh, party=%d",
		req.Date.Format(domain.DateFormat), req.DurationHours, req.PartySize)

	// 1. Validation
	if err := validateRequest(req, uc.maxPartySize); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CheckAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 2. Rules, read fresh per request
	rules, err := uc.rulesRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load rules: %v", err)
		return nil, fmt.Errorf("%w: failed to load rules: %v", ErrInternal, err)
	}

	// 3. Blackout short-circuits before anything else
	if blackout := availability.CheckBlackout(rules, req.Date); blackout.Blocked {
		uc.logger.Info("CheckAvailability: date %s blocked: %s",
			req.Date.Format(domain.DateFormat), blackout.Reason)
		return unavailable(req.Date, domain.ReasonBlockedDate, blackout.Reason), nil
	}

	capacity := availability.ResolveCapacity(rules)
	bufferMinutes := availability.ResolveBuffer(rules)

	// 4. Existing bookings for the date
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date, false)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	// 5. Daily cap, checked once per date
	if availability.CountTowardDailyCap(bookings) >= capacity.MaxDailyBookings {
		uc.logger.Info("CheckAvailability: daily cap %d reached for %s",
			capacity.MaxDailyBookings, req.Date.Format(domain.DateFormat))
		return unavailable(req.Date, domain.ReasonDailyCapReached, msgDailyCapReached), nil
	}

	// 6. Candidate slots
	slots := availability.GenerateSlots(req.DurationHours)
	if req.StartTime != nil {
		slot, ok := availability.SlotFor(*req.StartTime, req.DurationHours)
		if !ok {
			return nil, fmt.Errorf("%w: start_time must be on the hour between %02d:00 and %02d:00",
				ErrInvalidInput, domain.BusinessOpenHour, domain.BusinessCloseHour-req.DurationHours)
		}
		slots = []domain.TimeSlot{slot}
	}

	// 7. Conflict detection under buffer and concurrency ceiling
	openSlots := availability.FilterOpenSlots(slots, bookings, bufferMinutes, capacity.MaxConcurrentBookings)
	if len(openSlots) == 0 {
		uc.logger.Info("CheckAvailability: no open slots for %s (%dh)",
			req.Date.Format(domain.DateFormat), req.DurationHours)
		return unavailable(req.Date, domain.ReasonNoOpenSlots, msgNoOpenSlots), nil
	}

	// 8. Vehicle selection
	vehicles, err := uc.vehicleRepo.ListEligible(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load fleet: %v", err)
		return nil, fmt.Errorf("%w: failed to load fleet: %v", ErrInternal, err)
	}

	vehicle := availability.SelectVehicle(vehicles, req.PartySize, req.VehicleType)
	if vehicle == nil {
		uc.logger.Info("CheckAvailability: no suitable vehicle for party=%d", req.PartySize)
		return unavailable(req.Date, domain.ReasonNoSuitableVehicle, msgNoSuitableVehicle), nil
	}

	// 9. Pricing
	pricingRules, err := uc.pricingRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to load pricing rules: %v", ErrInternal, err)
	}

	isWeekend := domain.IsWeekend(req.Date)
	rule := availability.ResolvePricingRule(pricingRules, vehicle.Type, req.DurationHours, isWeekend)
	quote := availability.BuildQuote(rule, req.DurationHours, isWeekend)

	uc.logger.Info("CheckAvailability: %d open slots, vehicle=%d (%s), total=%.2f",
		len(openSlots), vehicle.ID, vehicle.Type, quote.Total)

	return &Response{
		Available:        true,
		Date:             req.Date,
		AvailableTimes:   openSlots,
		SuggestedVehicle: vehicle,
		Pricing:          &quote,
	}, nil
}
