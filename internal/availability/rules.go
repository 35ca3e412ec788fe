// Package availability is the pure core of the booking engine: rule
// resolution, blackout checks, slot generation, conflict detection, vehicle
// selection and pricing. Nothing here touches storage or the clock; the
// usecases feed it loaded rows and get decisions back, so two calls with the
// same inputs always produce the same outputs.
package availability

import (
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// BlackoutResult is the outcome of the blackout check for one date.
type BlackoutResult struct {
	Blocked bool
	Reason  string
}

// CheckBlackout reports whether any active blackout rule covers the date.
// When several match, the reason of the winning rule (highest priority,
// then lowest id) is returned.
func CheckBlackout(rules []*domain.AvailabilityRule, date time.Time) BlackoutResult {
	var winner *domain.AvailabilityRule

	for _, r := range rules {
		if !r.IsActive || !r.BlocksDate(date) {
			continue
		}
		if winner == nil || preferRule(r, winner) {
			winner = r
		}
	}

	if winner == nil {
		return BlackoutResult{}
	}

	reason := "date unavailable"
	if winner.Reason != nil && *winner.Reason != "" {
		reason = *winner.Reason
	}
	return BlackoutResult{Blocked: true, Reason: reason}
}

// ResolveCapacity picks the active capacity_limit rule, falling back to the
// documented defaults when none exists. Missing configuration is not an
// error.
func ResolveCapacity(rules []*domain.AvailabilityRule) domain.CapacityPolicy {
	winner := resolveByType(rules, domain.RuleCapacityLimit)

	policy := domain.CapacityPolicy{
		MaxConcurrentBookings: domain.DefaultMaxConcurrentBookings,
		MaxDailyBookings:      domain.DefaultMaxDailyBookings,
	}
	if winner == nil {
		return policy
	}
	if winner.MaxConcurrentBookings != nil {
		policy.MaxConcurrentBookings = *winner.MaxConcurrentBookings
	}
	if winner.MaxDailyBookings != nil {
		policy.MaxDailyBookings = *winner.MaxDailyBookings
	}
	return policy
}

// ResolveBuffer picks the active buffer_time rule, defaulting to 120 minutes.
func ResolveBuffer(rules []*domain.AvailabilityRule) int {
	winner := resolveByType(rules, domain.RuleBufferTime)
	if winner == nil || winner.BufferMinutes == nil {
		return domain.DefaultBufferMinutes
	}
	return *winner.BufferMinutes
}

// resolveByType selects one active rule of the given type: highest priority
// wins, remaining ties go to the lowest id so repeated calls are idempotent.
func resolveByType(rules []*domain.AvailabilityRule, ruleType domain.RuleType) *domain.AvailabilityRule {
	var winner *domain.AvailabilityRule
	for _, r := range rules {
		if !r.IsActive || r.Type != ruleType {
			continue
		}
		if winner == nil || preferRule(r, winner) {
			winner = r
		}
	}
	return winner
}

func preferRule(candidate, current *domain.AvailabilityRule) bool {
	if candidate.Priority != current.Priority {
		return candidate.Priority > current.Priority
	}
	return candidate.ID < current.ID
}
