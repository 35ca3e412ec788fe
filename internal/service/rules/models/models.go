package models

import (
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// Request models

// UpdateCapacityRequest adjusts the active capacity and buffer rules.
// Nil fields are left unchanged.
type UpdateCapacityRequest struct {
	MaxConcurrentBookings *int `json:"max_concurrent_bookings,omitempty"`
	MaxDailyBookings      *int `json:"max_daily_bookings,omitempty"`
	BufferMinutes         *int `json:"buffer_minutes,omitempty"`
}

// Response models

// RuleResponse is the API shape of a single availability rule.
type RuleResponse struct {
	ID                    int64   `json:"id"`
	RuleType              string  `json:"rule_type"`
	BlackoutDate          *string `json:"blackout_date,omitempty"`
	StartDate             *string `json:"start_date,omitempty"`
	EndDate               *string `json:"end_date,omitempty"`
	Reason                *string `json:"reason,omitempty"`
	MaxConcurrentBookings *int    `json:"max_concurrent_bookings,omitempty"`
	MaxDailyBookings      *int    `json:"max_daily_bookings,omitempty"`
	BufferMinutes         *int    `json:"buffer_minutes,omitempty"`
	Priority              int     `json:"priority"`
	IsActive              bool    `json:"is_active"`
}

// RulesResponse lists the active rules plus the values the engine resolves from them.
type RulesResponse struct {
	Rules     []RuleResponse  `json:"rules"`
	Effective EffectivePolicy `json:"effective"`
}

// EffectivePolicy is the capacity and buffer configuration after rule resolution.
type EffectivePolicy struct {
	MaxConcurrentBookings int `json:"max_concurrent_bookings"`
	MaxDailyBookings      int `json:"max_daily_bookings"`
	BufferMinutes         int `json:"buffer_minutes"`
}

// FromDomainRule converts a domain availability rule.
func FromDomainRule(r *domain.AvailabilityRule) RuleResponse {
	resp := RuleResponse{
		ID:                    r.ID,
		RuleType:              string(r.Type),
		Reason:                r.Reason,
		MaxConcurrentBookings: r.MaxConcurrentBookings,
		MaxDailyBookings:      r.MaxDailyBookings,
		BufferMinutes:         r.BufferMinutes,
		Priority:              r.Priority,
		IsActive:              r.IsActive,
	}
	if r.Date != nil {
		s := r.Date.Format(domain.DateFormat)
		resp.BlackoutDate = &s
	}
	if r.StartDate != nil {
		s := r.StartDate.Format(domain.DateFormat)
		resp.StartDate = &s
	}
	if r.EndDate != nil {
		s := r.EndDate.Format(domain.DateFormat)
		resp.EndDate = &s
	}
	return resp
}
