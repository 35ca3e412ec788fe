package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/ptr"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/types"
)

type bookingRepoMock struct {
	bookings []*domain.Booking
	err      error
	calls    int
}

func (m *bookingRepoMock) GetByDate(_ context.Context, _ time.Time, _ bool) ([]*domain.Booking, error) {
	m.calls++
	return m.bookings, m.err
}

type rulesRepoMock struct {
	rules []*domain.AvailabilityRule
	err   error
	calls int
}

func (m *rulesRepoMock) ListActive(_ context.Context) ([]*domain.AvailabilityRule, error) {
	m.calls++
	return m.rules, m.err
}

type pricingRepoMock struct {
	rules []*domain.PricingRule
	err   error
	calls int
}

func (m *pricingRepoMock) ListActive(_ context.Context) ([]*domain.PricingRule, error) {
	m.calls++
	return m.rules, m.err
}

type vehicleRepoMock struct {
	vehicles []*domain.Vehicle
	err      error
	calls    int
}

func (m *vehicleRepoMock) ListEligible(_ context.Context) ([]*domain.Vehicle, error) {
	m.calls++
	return m.vehicles, m.err
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 6, 6, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(b *bookingRepoMock, r *rulesRepoMock, p *pricingRepoMock, v *vehicleRepoMock) *UseCase {
	uc := NewUseCase(b, r, p, v, domain.DefaultMaxPartySize, noopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func defaultFleet() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: 1, Name: "Cab", Type: domain.VehicleSUV, Capacity: 6, IsActive: true, IsOperational: true},
		{ID: 2, Name: "Sprinter", Type: domain.VehicleVan, Capacity: 12, IsActive: true, IsOperational: true},
	}
}

func TestExecute_AvailableHappyPath(t *testing.T) {
	bookingRepo := &bookingRepoMock{}
	rulesRepo := &rulesRepoMock{}
	pricingRepo := &pricingRepoMock{}
	vehicleRepo := &vehicleRepoMock{vehicles: defaultFleet()}
	uc := newTestUseCase(bookingRepo, rulesRepo, pricingRepo, vehicleRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:          tuesday,
		DurationHours: 6,
		PartySize:     2,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Len(t, resp.AvailableTimes, 4)
	assert.Equal(t, domain.TimeSlot{Start: "09:00", End: "15:00"}, resp.AvailableTimes[0])
	require.NotNil(t, resp.SuggestedVehicle)
	assert.Equal(t, domain.VehicleSUV, resp.SuggestedVehicle.Type)
	require.NotNil(t, resp.Pricing)
	// weekday fallback rate for a 6h tour
	assert.InDelta(t, 600.00, resp.Pricing.BasePrice, 1e-9)

	assert.Equal(t, 1, rulesRepo.calls)
	assert.Equal(t, 1, bookingRepo.calls)
	assert.Equal(t, 1, vehicleRepo.calls)
	assert.Equal(t, 1, pricingRepo.calls)
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &pricingRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})
	req := &Request{Date: saturday, DurationHours: 4, PartySize: 3}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_WeekendPricing(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &pricingRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday, DurationHours: 8, PartySize: 2})

	require.NoError(t, err)
	require.NotNil(t, resp.Pricing)
	assert.InDelta(t, 900.00, resp.Pricing.BasePrice, 1e-9)
}

func TestExecute_BlockedDate(t *testing.T) {
	blocked := tuesday
	rulesRepo := &rulesRepoMock{rules: []*domain.AvailabilityRule{
		{ID: 1, Type: domain.RuleBlackoutDate, Date: &blocked, Reason: ptr.Ptr("private event"), IsActive: true},
	}}
	bookingRepo := &bookingRepoMock{}
	uc := newTestUseCase(bookingRepo, rulesRepo, &pricingRepoMock{}, &vehicleRepoMock{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, DurationHours: 6, PartySize: 2})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, domain.ReasonBlockedDate, resp.Reason)
	assert.Equal(t, "private event", resp.Message)
	// the blackout short-circuits before bookings are loaded
	assert.Equal(t, 0, bookingRepo.calls)
}

func TestExecute_DailyCapReached(t *testing.T) {
	// five booked tours against the default daily cap of five; a completed
	// tour still counts, only cancelled rows would not
	booked := make([]*domain.Booking, 0, 5)
	for i := 0; i < 4; i++ {
		booked = append(booked, &domain.Booking{StartTime: "09:00", EndTime: "13:00", Status: domain.StatusConfirmed})
	}
	booked = append(booked, &domain.Booking{StartTime: "09:00", EndTime: "13:00", Status: domain.StatusCompleted})

	vehicleRepo := &vehicleRepoMock{vehicles: defaultFleet()}
	uc := newTestUseCase(&bookingRepoMock{bookings: booked}, &rulesRepoMock{}, &pricingRepoMock{}, vehicleRepo)

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, DurationHours: 6, PartySize: 2})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, domain.ReasonDailyCapReached, resp.Reason)
	assert.Equal(t, 0, vehicleRepo.calls)
}

func TestExecute_NoOpenSlots(t *testing.T) {
	// three concurrent all-day tours saturate the default ceiling of three
	busy := []*domain.Booking{
		{StartTime: "09:00", EndTime: "17:00", Status: domain.StatusConfirmed},
		{StartTime: "09:00", EndTime: "17:00", Status: domain.StatusConfirmed},
		{StartTime: "09:00", EndTime: "17:00", Status: domain.StatusPending},
	}
	uc := newTestUseCase(&bookingRepoMock{bookings: busy}, &rulesRepoMock{}, &pricingRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, DurationHours: 6, PartySize: 2})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, domain.ReasonNoOpenSlots, resp.Reason)
}

func TestExecute_NoSuitableVehicle(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &pricingRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})

	// the van seats 12, a party of 13 has no vehicle but the slots were open
	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, DurationHours: 6, PartySize: 13})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, domain.ReasonNoSuitableVehicle, resp.Reason)
}

func TestExecute_StartTimeNarrowing(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &pricingRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})

	start := types.TimeString("12:00")
	resp, err := uc.Execute(context.Background(), &Request{
		Date:          tuesday,
		DurationHours: 6,
		PartySize:     2,
		StartTime:     &start,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	require.Len(t, resp.AvailableTimes, 1)
	assert.Equal(t, domain.TimeSlot{Start: "12:00", End: "18:00"}, resp.AvailableTimes[0])
}

func TestExecute_StartTimeOffGrid(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &pricingRepoMock{}, &vehicleRepoMock{})

	// 13:00 + 6h would run past closing
	start := types.TimeString("13:00")
	_, err := uc.Execute(context.Background(), &Request{
		Date:          tuesday,
		DurationHours: 6,
		PartySize:     2,
		StartTime:     &start,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &pricingRepoMock{}, &vehicleRepoMock{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "bad duration",
			req:     &Request{Date: tuesday, DurationHours: 5, PartySize: 2},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "party too small",
			req:     &Request{Date: tuesday, DurationHours: 6, PartySize: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "party too large",
			req:     &Request{Date: tuesday, DurationHours: 6, PartySize: domain.DefaultMaxPartySize + 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			req:     &Request{Date: testNow.AddDate(0, 0, -1), DurationHours: 6, PartySize: 2},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RepositoryFailure(t *testing.T) {
	boom := errors.New("connection refused")
	uc := newTestUseCase(&bookingRepoMock{err: boom}, &rulesRepoMock{}, &pricingRepoMock{}, &vehicleRepoMock{})

	_, err := uc.Execute(context.Background(), &Request{Date: tuesday, DurationHours: 6, PartySize: 2})

	assert.ErrorIs(t, err, ErrInternal)
}
