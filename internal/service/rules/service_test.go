package rules

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/rules/models"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/ptr"
)

type rulesRepoMock struct {
	rules   []*domain.AvailabilityRule
	listErr error

	capacityCalls  int
	lastConcurrent int
	lastDaily      int
	capacityErr    error

	bufferCalls int
	lastBuffer  int
	bufferErr   error
}

func (m *rulesRepoMock) ListActive(_ context.Context) ([]*domain.AvailabilityRule, error) {
	return m.rules, m.listErr
}

func (m *rulesRepoMock) UpsertCapacityLimit(_ context.Context, maxConcurrent, maxDaily int) error {
	m.capacityCalls++
	m.lastConcurrent = maxConcurrent
	m.lastDaily = maxDaily
	return m.capacityErr
}

func (m *rulesRepoMock) UpsertBufferTime(_ context.Context, bufferMinutes int) error {
	m.bufferCalls++
	m.lastBuffer = bufferMinutes
	return m.bufferErr
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestGetRules_Defaults(t *testing.T) {
	svc := NewService(&rulesRepoMock{}, noopLogger{})

	resp, err := svc.GetRules(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Rules)
	assert.Equal(t, domain.DefaultMaxConcurrentBookings, resp.Effective.MaxConcurrentBookings)
	assert.Equal(t, domain.DefaultMaxDailyBookings, resp.Effective.MaxDailyBookings)
	assert.Equal(t, domain.DefaultBufferMinutes, resp.Effective.BufferMinutes)
}

func TestGetRules_ConfiguredPolicy(t *testing.T) {
	repo := &rulesRepoMock{rules: []*domain.AvailabilityRule{
		{
			ID:                    1,
			Type:                  domain.RuleCapacityLimit,
			MaxConcurrentBookings: ptr.Ptr(2),
			MaxDailyBookings:      ptr.Ptr(4),
			IsActive:              true,
		},
		{
			ID:            2,
			Type:          domain.RuleBufferTime,
			BufferMinutes: ptr.Ptr(30),
			IsActive:      true,
		},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetRules(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Rules, 2)
	assert.Equal(t, "capacity_limit", resp.Rules[0].RuleType)
	assert.Equal(t, 2, resp.Effective.MaxConcurrentBookings)
	assert.Equal(t, 4, resp.Effective.MaxDailyBookings)
	assert.Equal(t, 30, resp.Effective.BufferMinutes)
}

func TestGetRules_RepositoryError(t *testing.T) {
	svc := NewService(&rulesRepoMock{listErr: errors.New("connection refused")}, noopLogger{})

	_, err := svc.GetRules(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateCapacity_AllFields(t *testing.T) {
	repo := &rulesRepoMock{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpdateCapacity(context.Background(), &models.UpdateCapacityRequest{
		MaxConcurrentBookings: ptr.Ptr(2),
		MaxDailyBookings:      ptr.Ptr(8),
		BufferMinutes:         ptr.Ptr(60),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.capacityCalls)
	assert.Equal(t, 2, repo.lastConcurrent)
	assert.Equal(t, 8, repo.lastDaily)
	assert.Equal(t, 1, repo.bufferCalls)
	assert.Equal(t, 60, repo.lastBuffer)
}

func TestUpdateCapacity_OmittedFieldsKeepEffectiveValues(t *testing.T) {
	// concurrent changes, daily keeps its configured value of 4
	repo := &rulesRepoMock{rules: []*domain.AvailabilityRule{
		{
			ID:                    1,
			Type:                  domain.RuleCapacityLimit,
			MaxConcurrentBookings: ptr.Ptr(3),
			MaxDailyBookings:      ptr.Ptr(4),
			IsActive:              true,
		},
	}}
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpdateCapacity(context.Background(), &models.UpdateCapacityRequest{
		MaxConcurrentBookings: ptr.Ptr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.capacityCalls)
	assert.Equal(t, 1, repo.lastConcurrent)
	assert.Equal(t, 4, repo.lastDaily)
	assert.Zero(t, repo.bufferCalls)
}

func TestUpdateCapacity_BufferOnly(t *testing.T) {
	repo := &rulesRepoMock{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpdateCapacity(context.Background(), &models.UpdateCapacityRequest{
		BufferMinutes: ptr.Ptr(0),
	})

	require.NoError(t, err)
	assert.Zero(t, repo.capacityCalls)
	assert.Equal(t, 1, repo.bufferCalls)
	assert.Equal(t, 0, repo.lastBuffer)
}

func TestUpdateCapacity_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateCapacityRequest
	}{
		{"empty request", models.UpdateCapacityRequest{}},
		{"concurrent below one", models.UpdateCapacityRequest{MaxConcurrentBookings: ptr.Ptr(0)}},
		{"daily below one", models.UpdateCapacityRequest{MaxDailyBookings: ptr.Ptr(-1)}},
		{"negative buffer", models.UpdateCapacityRequest{BufferMinutes: ptr.Ptr(-10)}},
		{"buffer over a day", models.UpdateCapacityRequest{BufferMinutes: ptr.Ptr(1441)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &rulesRepoMock{}
			svc := NewService(repo, noopLogger{})

			_, err := svc.UpdateCapacity(context.Background(), &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.capacityCalls)
			assert.Zero(t, repo.bufferCalls)
		})
	}
}

func TestUpdateCapacity_RepositoryError(t *testing.T) {
	repo := &rulesRepoMock{capacityErr: errors.New("connection refused")}
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpdateCapacity(context.Background(), &models.UpdateCapacityRequest{
		MaxConcurrentBookings: ptr.Ptr(2),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
