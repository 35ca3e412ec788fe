package domain

import "time"

// PricingRule is one row of the pricing_rules table, keyed on vehicle type
// and tour duration. IsWeekend nil means the rule applies to both weekday
// and weekend dates.
type PricingRule struct {
	ID                int64
	VehicleType       VehicleType
	DurationHours     int
	IsWeekend         *bool
	BasePrice         float64
	WeekendMultiplier *float64
	Priority          int
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Matches reports whether the rule applies to the given weekend flag.
// A nil IsWeekend is a wildcard.
func (r *PricingRule) Matches(isWeekend bool) bool {
	return r.IsWeekend == nil || *r.IsWeekend == isWeekend
}

// Quote is a fully derived price breakdown. All amounts are rounded to
// cents; Total = BasePrice + GratuityEstimate + Taxes, DepositRequired is
// half the total.
type Quote struct {
	BasePrice        float64
	GratuityEstimate float64
	Taxes            float64
	Total            float64
	DepositRequired  float64
}
