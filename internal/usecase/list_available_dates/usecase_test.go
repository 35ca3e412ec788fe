package list_available_dates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

type bookingRepoMock struct {
	bookings   []*domain.Booking
	err        error
	calls      int
	lastFilter domain.BookingsFilter
}

func (m *bookingRepoMock) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.calls++
	m.lastFilter = filter
	return m.bookings, m.err
}

type rulesRepoMock struct {
	rules []*domain.AvailabilityRule
	err   error
}

func (m *rulesRepoMock) ListActive(_ context.Context) ([]*domain.AvailabilityRule, error) {
	return m.rules, m.err
}

type vehicleRepoMock struct {
	vehicles []*domain.Vehicle
	err      error
}

func (m *vehicleRepoMock) ListEligible(_ context.Context) ([]*domain.Vehicle, error) {
	return m.vehicles, m.err
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// the clock sits mid-month so past days of June are excluded
var testNow = time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)

func newTestUseCase(b *bookingRepoMock, r *rulesRepoMock, v *vehicleRepoMock) *UseCase {
	uc := NewUseCase(b, r, v, noopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func defaultFleet() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: 1, Type: domain.VehicleSUV, Capacity: 6, IsActive: true, IsOperational: true},
	}
}

func TestExecute_ListsRemainingDaysOfMonth(t *testing.T) {
	bookingRepo := &bookingRepoMock{}
	uc := newTestUseCase(bookingRepo, &rulesRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 6})

	require.NoError(t, err)
	// June 10 through June 30 with no bookings and no blackouts
	assert.Equal(t, 21, resp.Count)
	assert.Equal(t, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), resp.AvailableDates[0])
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), resp.AvailableDates[resp.Count-1])

	// the whole month comes from one range query
	assert.Equal(t, 1, bookingRepo.calls)
	require.NotNil(t, bookingRepo.lastFilter.StartDate)
	require.NotNil(t, bookingRepo.lastFilter.EndDate)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), *bookingRepo.lastFilter.StartDate)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), *bookingRepo.lastFilter.EndDate)
}

func TestExecute_WhollyPastMonthIsEmpty(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 1})

	require.NoError(t, err)
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.AvailableDates)
}

func TestExecute_BlackoutRangeExcluded(t *testing.T) {
	start := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC)
	rulesRepo := &rulesRepoMock{rules: []*domain.AvailabilityRule{
		{ID: 1, Type: domain.RuleBlackoutRange, StartDate: &start, EndDate: &end, IsActive: true},
	}}
	uc := newTestUseCase(&bookingRepoMock{}, rulesRepo, &vehicleRepoMock{vehicles: defaultFleet()})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 6})

	require.NoError(t, err)
	assert.Equal(t, 18, resp.Count)
	for _, d := range resp.AvailableDates {
		assert.False(t, !d.Before(start) && !d.After(end), "blacked out day %s listed", d.Format(domain.DateFormat))
	}
}

func TestExecute_FullDayExcluded(t *testing.T) {
	// June 12 is at the daily cap; June 13 is saturated at every slot
	capDay := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	busyDay := time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC)

	var bookings []*domain.Booking
	for i := 0; i < 5; i++ {
		bookings = append(bookings, &domain.Booking{
			TourDate: capDay, StartTime: "09:00", EndTime: "13:00", Status: domain.StatusConfirmed,
		})
	}
	for i := 0; i < 3; i++ {
		bookings = append(bookings, &domain.Booking{
			TourDate: busyDay, StartTime: "09:00", EndTime: "17:00", Status: domain.StatusConfirmed,
		})
	}

	uc := newTestUseCase(&bookingRepoMock{bookings: bookings}, &rulesRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 6})

	require.NoError(t, err)
	listed := make(map[string]bool, resp.Count)
	for _, d := range resp.AvailableDates {
		listed[d.Format(domain.DateFormat)] = true
	}
	assert.False(t, listed["2026-06-12"])
	assert.False(t, listed["2026-06-13"])
	assert.True(t, listed["2026-06-14"])
}

func TestExecute_NoFleetMeansNoDates(t *testing.T) {
	// the default party of two needs some eligible vehicle
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &vehicleRepoMock{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 6})

	require.NoError(t, err)
	assert.Zero(t, resp.Count)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{}, &rulesRepoMock{}, &vehicleRepoMock{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 1999, Month: 6})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	uc := newTestUseCase(&bookingRepoMock{err: errors.New("connection refused")}, &rulesRepoMock{}, &vehicleRepoMock{vehicles: defaultFleet()})

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 6})
	assert.ErrorIs(t, err, ErrInternal)
}
