package rules

import (
	"context"
	"fmt"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/availability"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/rules/models"
)

const (
	maxBufferMinutes = 1440
)

// Service exposes the availability rule configuration to staff.
type Service struct {
	rulesRepo RulesRepository
	logger    Logger
}

// NewService creates a new rules service.
func NewService(rulesRepo RulesRepository, logger Logger) *Service {
	return &Service{
		rulesRepo: rulesRepo,
		logger:    logger,
	}
}

// GetRules returns the active rules together with the capacity and buffer
// values the availability engine resolves from them.
func (s *Service) GetRules(ctx context.Context) (*models.RulesResponse, error) {
	rules, err := s.rulesRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("GetRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRules - repository error: %v", ErrInternal, err)
	}

	out := make([]models.RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, models.FromDomainRule(r))
	}

	policy := availability.ResolveCapacity(rules)
	return &models.RulesResponse{
		Rules: out,
		Effective: models.EffectivePolicy{
			MaxConcurrentBookings: policy.MaxConcurrentBookings,
			MaxDailyBookings:      policy.MaxDailyBookings,
			BufferMinutes:         availability.ResolveBuffer(rules),
		},
	}, nil
}

// UpdateCapacity replaces the active capacity limit and buffer rules with the
// requested values. Omitted fields keep their current effective value.
func (s *Service) UpdateCapacity(ctx context.Context, req *models.UpdateCapacityRequest) (*models.RulesResponse, error) {
	s.logger.Info("UpdateCapacity: concurrent=%v daily=%v buffer=%v",
		req.MaxConcurrentBookings, req.MaxDailyBookings, req.BufferMinutes)

	// 1. Validate the requested values.
	if err := validateCapacityRequest(req); err != nil {
		s.logger.Warn("UpdateCapacity: validation failed: %v", err)
		return nil, err
	}

	// 2. Read the current effective policy to fill omitted fields.
	rules, err := s.rulesRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("UpdateCapacity: failed to load rules: %v", err)
		return nil, fmt.Errorf("%w: UpdateCapacity - repository error: %v", ErrInternal, err)
	}
	policy := availability.ResolveCapacity(rules)
	buffer := availability.ResolveBuffer(rules)

	maxConcurrent := policy.MaxConcurrentBookings
	if req.MaxConcurrentBookings != nil {
		maxConcurrent = *req.MaxConcurrentBookings
	}
	maxDaily := policy.MaxDailyBookings
	if req.MaxDailyBookings != nil {
		maxDaily = *req.MaxDailyBookings
	}
	if req.BufferMinutes != nil {
		buffer = *req.BufferMinutes
	}

	// 3. Persist.
	if req.MaxConcurrentBookings != nil || req.MaxDailyBookings != nil {
		if err := s.rulesRepo.UpsertCapacityLimit(ctx, maxConcurrent, maxDaily); err != nil {
			s.logger.Error("UpdateCapacity: failed to upsert capacity limit: %v", err)
			return nil, fmt.Errorf("%w: UpdateCapacity - repository error: %v", ErrInternal, err)
		}
	}
	if req.BufferMinutes != nil {
		if err := s.rulesRepo.UpsertBufferTime(ctx, buffer); err != nil {
			s.logger.Error("UpdateCapacity: failed to upsert buffer time: %v", err)
			return nil, fmt.Errorf("%w: UpdateCapacity - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateCapacity: rules updated, concurrent=%d daily=%d buffer=%d",
		maxConcurrent, maxDaily, buffer)

	// 4. Return the fresh state.
	return s.GetRules(ctx)
}

func validateCapacityRequest(req *models.UpdateCapacityRequest) error {
	if req.MaxConcurrentBookings == nil && req.MaxDailyBookings == nil && req.BufferMinutes == nil {
		return fmt.Errorf("%w: at least one of max_concurrent_bookings, max_daily_bookings, buffer_minutes is required", ErrInvalidInput)
	}
	if req.MaxConcurrentBookings != nil && *req.MaxConcurrentBookings < 1 {
		return fmt.Errorf("%w: max_concurrent_bookings must be at least 1", ErrInvalidInput)
	}
	if req.MaxDailyBookings != nil && *req.MaxDailyBookings < 1 {
		return fmt.Errorf("%w: max_daily_bookings must be at least 1", ErrInvalidInput)
	}
	if req.BufferMinutes != nil && (*req.BufferMinutes < 0 || *req.BufferMinutes > maxBufferMinutes) {
		return fmt.Errorf("%w: buffer_minutes must be between 0 and %d", ErrInvalidInput, maxBufferMinutes)
	}
	return nil
}
