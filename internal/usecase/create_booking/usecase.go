package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/availability"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/integrations/crmservice"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/txmanager"
)

// UseCase is the authoritative write path. The availability check endpoint
// is advisory; everything it decided is decided again here, inside a
// serializable transaction with the date's bookings locked, before the
// insert commits.
type UseCase struct {
	bookingRepo  BookingRepository
	rulesRepo    RulesRepository
	pricingRepo  PricingRepository
	vehicleRepo  VehicleRepository
	crmClient    CRMServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	maxPartySize int
	logger       Logger
}

// NewUseCase creates the booking creation usecase
func NewUseCase(
	bookingRepo BookingRepository,
	rulesRepo RulesRepository,
	pricingRepo PricingRepository,
	vehicleRepo VehicleRepository,
	crmClient CRMServiceClient,
	txManager TransactionManager,
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
		crmClient:    crmClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		maxPartySize: maxPartySize,
		logger:       logger,
	}
}

// Execute validates the request, fetches the customer profile, then re-runs
// the full availability decision and inserts under SERIALIZABLE isolation.
// A serialization conflict surfaces as ErrSlotJustTaken; retrying is the
// caller's responsibility.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, start=%s, duration=%dh, party=%d, customer=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.PartySize, req.CustomerID)

	// 1. Validation
	if err := validateRequest(req, uc.maxPartySize); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Customer profile. A CRM outage degrades to a booking without the
	// denormalized contact data; a missing customer is a hard error.
	var customerName, customerEmail *string
	customer, err := uc.crmClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	switch {
	case err == nil:
		customerName = &customer.Name
		customerEmail = &customer.Email
	case errors.Is(err, crmservice.ErrCustomerNotFound):
		uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
		return nil, ErrCustomerNotFound
	case errors.Is(err, crmservice.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: proceeding without CRM profile for customer=%d", req.CustomerID)
	default:
		uc.logger.Error("CreateBooking: failed to fetch customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to fetch customer: %v", ErrInternal, err)
	}

	var result *domain.Booking
	var vehicleType domain.VehicleType
	var quote domain.Quote

	// 3. Decision and insert under SERIALIZABLE isolation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rules, err := uc.rulesRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load rules: %v", err)
			return fmt.Errorf("%w: failed to load rules: %v", ErrInternal, err)
		}

		// 3.1 Blackout
		if blackout := availability.CheckBlackout(rules, req.Date); blackout.Blocked {
			uc.logger.Warn("CreateBooking: date %s blocked: %s",
				req.Date.Format(domain.DateFormat), blackout.Reason)
			return fmt.Errorf("%w: %s", ErrDateBlocked, blackout.Reason)
		}

		capacity := availability.ResolveCapacity(rules)
		bufferMinutes := availability.ResolveBuffer(rules)

		// 3.2 The date's bookings, locked FOR UPDATE
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load bookings: %v", err)
			return fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
		}

		// 3.3 Daily cap
		if availability.CountTowardDailyCap(bookings) >= capacity.MaxDailyBookings {
			uc.logger.Warn("CreateBooking: daily cap %d reached for %s",
				capacity.MaxDailyBookings, req.Date.Format(domain.DateFormat))
			return ErrDailyCapReached
		}

		// 3.4 The requested slot must be a valid candidate and under the ceiling
		slot, ok := availability.SlotFor(req.StartTime, req.DurationHours)
		if !ok {
			return fmt.Errorf("%w: start_time must be on the hour between %02d:00 and %02d:00",
				ErrInvalidTimeSlot, domain.BusinessOpenHour, domain.BusinessCloseHour-req.DurationHours)
		}
		if !availability.SlotOpen(slot, bookings, bufferMinutes, capacity.MaxConcurrentBookings) {
			uc.logger.Warn("CreateBooking: slot %s-%s over capacity on %s",
				slot.Start, slot.End, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 3.5 Vehicle
		vehicles, err := uc.vehicleRepo.ListEligible(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load fleet: %v", err)
			return fmt.Errorf("%w: failed to load fleet: %v", ErrInternal, err)
		}
		vehicle := availability.SelectVehicle(vehicles, req.PartySize, req.VehicleType)
		if vehicle == nil {
			uc.logger.Warn("CreateBooking: no suitable vehicle for party=%d", req.PartySize)
			return ErrNoSuitableVehicle
		}
		vehicleType = vehicle.Type

		// 3.6 Quote, fixed at creation time
		pricingRules, err := uc.pricingRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load pricing rules: %v", err)
			return fmt.Errorf("%w: failed to load pricing rules: %v", ErrInternal, err)
		}
		isWeekend := domain.IsWeekend(req.Date)
		rule := availability.ResolvePricingRule(pricingRules, vehicle.Type, req.DurationHours, isWeekend)
		quote = availability.BuildQuote(rule, req.DurationHours, isWeekend)

		// 3.7 Insert
		booking := &domain.Booking{
			TourDate:        domain.Midnight(req.Date),
			StartTime:       slot.Start,
			EndTime:         slot.End,
			DurationHours:   req.DurationHours,
			PartySize:       req.PartySize,
			VehicleID:       &vehicle.ID,
			Status:          domain.StatusPending,
			TotalPrice:      quote.Total,
			DepositRequired: quote.DepositRequired,
			CustomerID:      req.CustomerID,
			CustomerName:    customerName,
			CustomerEmail:   customerEmail,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// A lost serialization race means the slot was taken between our
		// check and commit. Surface it distinctly; never loop here.
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization conflict on %s %s",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotJustTaken
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, vehicle=%d, total=%.2f",
		result.ID, *result.VehicleID, result.TotalPrice)

	return &Response{
		ID:            result.ID,
		TourDate:      result.TourDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		DurationHours: result.DurationHours,
		PartySize:     result.PartySize,
		VehicleID:     *result.VehicleID,
		VehicleType:   vehicleType,
		Status:        string(result.Status),
		Pricing:       quote,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
