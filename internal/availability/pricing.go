package availability

import (
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/money"
)

// Fallback price tables, keyed by tour duration in hours. Used only when no
// active pricing rule matches, so a half-configured rule set degrades to a
// published rate instead of failing the request.
var (
	fallbackWeekdayPrices = map[int]float64{4: 400, 6: 600, 8: 800}
	fallbackWeekendPrices = map[int]float64{4: 500, 6: 700, 8: 900}
)

// ResolvePricingRule picks the active rule for (vehicleType, durationHours):
// a rule whose is_weekend matches the request beats a wildcard, then highest
// priority, then lowest id. Returns nil when nothing matches.
func ResolvePricingRule(rules []*domain.PricingRule, vehicleType domain.VehicleType, durationHours int, isWeekend bool) *domain.PricingRule {
	var winner *domain.PricingRule
	for _, r := range rules {
		if !r.IsActive || r.VehicleType != vehicleType || r.DurationHours != durationHours {
			continue
		}
		if !r.Matches(isWeekend) {
			continue
		}
		if winner == nil || preferPricingRule(r, winner) {
			winner = r
		}
	}
	return winner
}

func preferPricingRule(candidate, current *domain.PricingRule) bool {
	// Explicit weekend match beats the nil wildcard.
	candidateExplicit := candidate.IsWeekend != nil
	currentExplicit := current.IsWeekend != nil
	if candidateExplicit != currentExplicit {
		return candidateExplicit
	}
	if candidate.Priority != current.Priority {
		return candidate.Priority > current.Priority
	}
	return candidate.ID < current.ID
}

// BuildQuote derives the full price breakdown from a resolved rule, or from
// the fallback tables when rule is nil. Every derived amount is rounded
// half-up to cents at its own step.
func BuildQuote(rule *domain.PricingRule, durationHours int, isWeekend bool) domain.Quote {
	base := fallbackPrice(durationHours, isWeekend)
	if rule != nil {
		base = rule.BasePrice
		if isWeekend && rule.WeekendMultiplier != nil {
			base = base * *rule.WeekendMultiplier
		}
	}
	base = money.RoundCents(base)

	gratuity := money.Share(base, domain.GratuityRate)
	taxes := money.Share(base, domain.TaxRate)
	total := money.RoundCents(base + gratuity + taxes)

	return domain.Quote{
		BasePrice:        base,
		GratuityEstimate: gratuity,
		Taxes:            taxes,
		Total:            total,
		DepositRequired:  money.Share(total, domain.DepositRate),
	}
}

func fallbackPrice(durationHours int, isWeekend bool) float64 {
	table := fallbackWeekdayPrices
	if isWeekend {
		table = fallbackWeekendPrices
	}
	if price, ok := table[durationHours]; ok {
		return price
	}
	// Durations are validated upstream; an unknown key prices as the longest tour.
	if isWeekend {
		return fallbackWeekendPrices[8]
	}
	return fallbackWeekdayPrices[8]
}
