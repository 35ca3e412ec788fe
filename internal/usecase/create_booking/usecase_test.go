package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/integrations/crmservice"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/txmanager"
)

type bookingRepoMock struct {
	bookings    []*domain.Booking
	getErr      error
	createErr   error
	created     *domain.Booking
	getCalls    int
	createCalls int
}

func (m *bookingRepoMock) GetByDate(_ context.Context, _ time.Time, _ bool) ([]*domain.Booking, error) {
	m.getCalls++
	return m.bookings, m.getErr
}

func (m *bookingRepoMock) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	b.ID = 101
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	m.created = b
	return b, nil
}

type rulesRepoMock struct {
	rules []*domain.AvailabilityRule
	err   error
}

func (m *rulesRepoMock) ListActive(_ context.Context) ([]*domain.AvailabilityRule, error) {
	return m.rules, m.err
}

type pricingRepoMock struct {
	rules []*domain.PricingRule
	err   error
}

func (m *pricingRepoMock) ListActive(_ context.Context) ([]*domain.PricingRule, error) {
	return m.rules, m.err
}

type vehicleRepoMock struct {
	vehicles []*domain.Vehicle
	err      error
}

func (m *vehicleRepoMock) ListEligible(_ context.Context) ([]*domain.Vehicle, error) {
	return m.vehicles, m.err
}

type crmClientMock struct {
	customer *crmservice.Customer
	err      error
	calls    int
}

func (m *crmClientMock) GetCustomerWithGracefulDegradation(_ context.Context, _ int64) (*crmservice.Customer, error) {
	m.calls++
	return m.customer, m.err
}

// txManagerMock runs the body inline; err (when set) replaces the body's
// outcome, simulating a commit-time serialization failure.
type txManagerMock struct {
	err   error
	calls int
}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.err
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	testNow = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	bookingRepo *bookingRepoMock
	rulesRepo   *rulesRepoMock
	pricingRepo *pricingRepoMock
	vehicleRepo *vehicleRepoMock
	crm         *crmClientMock
	txMgr       *txManagerMock
	uc          *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookingRepo: &bookingRepoMock{},
		rulesRepo:   &rulesRepoMock{},
		pricingRepo: &pricingRepoMock{},
		vehicleRepo: &vehicleRepoMock{vehicles: []*domain.Vehicle{
			{ID: 1, Name: "Cab", Type: domain.VehicleSUV, Capacity: 6, IsActive: true, IsOperational: true},
			{ID: 2, Name: "Sprinter", Type: domain.VehicleVan, Capacity: 12, IsActive: true, IsOperational: true},
		}},
		crm:   &crmClientMock{customer: &crmservice.Customer{ID: 7, Name: "Ada Vintner", Email: "ada@example.com"}},
		txMgr: &txManagerMock{},
	}
	f.uc = NewUseCase(f.bookingRepo, f.rulesRepo, f.pricingRepo, f.vehicleRepo, f.crm, f.txMgr,
		domain.DefaultMaxPartySize, noopLogger{})
	f.uc.timeProvider = &fixedTime{now: testNow}
	return f
}

func validRequest() *Request {
	return &Request{
		Date:          tuesday,
		StartTime:     "12:00",
		DurationHours: 6,
		PartySize:     2,
		CustomerID:    7,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "12:00", resp.StartTime.String())
	assert.Equal(t, "18:00", resp.EndTime.String())
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.VehicleSUV, resp.VehicleType)
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Ada Vintner", *resp.CustomerName)
	// weekday fallback rate for 6h, with the derived amounts
	assert.InDelta(t, 600.00, resp.Pricing.BasePrice, 1e-9)
	assert.InDelta(t, 744.00, resp.Pricing.Total, 1e-9)

	assert.Equal(t, 1, f.txMgr.calls)
	require.NotNil(t, f.bookingRepo.created)
	assert.Equal(t, int64(7), f.bookingRepo.created.CustomerID)
	assert.Equal(t, f.bookingRepo.created.TotalPrice, resp.Pricing.Total)
}

func TestExecute_SerializationConflictBecomesSlotJustTaken(t *testing.T) {
	f := newFixture()
	f.txMgr.err = fmt.Errorf("%w: commit failed", txmanager.ErrSerialization)

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotJustTaken)
	// the insert itself succeeded inside the doomed transaction
	assert.Equal(t, 1, f.bookingRepo.createCalls)
}

func TestExecute_DateBlocked(t *testing.T) {
	f := newFixture()
	blocked := tuesday
	f.rulesRepo.rules = []*domain.AvailabilityRule{
		{ID: 1, Type: domain.RuleBlackoutDate, Date: &blocked, IsActive: true},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.Equal(t, 0, f.bookingRepo.createCalls)
}

func TestExecute_DailyCapReached(t *testing.T) {
	f := newFixture()
	for i := 0; i < 5; i++ {
		f.bookingRepo.bookings = append(f.bookingRepo.bookings,
			&domain.Booking{StartTime: "09:00", EndTime: "13:00", Status: domain.StatusConfirmed})
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDailyCapReached)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	f := newFixture()
	// three tours overlapping 12:00-18:00 saturate the default ceiling
	for i := 0; i < 3; i++ {
		f.bookingRepo.bookings = append(f.bookingRepo.bookings,
			&domain.Booking{StartTime: "11:00", EndTime: "17:00", Status: domain.StatusConfirmed})
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 0, f.bookingRepo.createCalls)
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "16:00" // 16:00 + 6h runs past closing

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_NoSuitableVehicle(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.PartySize = 13

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNoSuitableVehicle)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture()
	f.crm.customer = nil
	f.crm.err = crmservice.ErrCustomerNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Equal(t, 0, f.txMgr.calls, "no transaction for an unknown customer")
}

func TestExecute_CRMDegradedStillBooks(t *testing.T) {
	f := newFixture()
	f.crm.customer = nil
	f.crm.err = crmservice.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.CustomerName)
	assert.Nil(t, resp.CustomerEmail)
	assert.Equal(t, 1, f.bookingRepo.createCalls)
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 0, f.crm.calls, "validation precedes the CRM call")
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	f := newFixture()
	f.bookingRepo.getErr = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
