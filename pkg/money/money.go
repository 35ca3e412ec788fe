// Package money holds the fixed-point helpers used by the pricing calculator.
// All quote amounts are rounded to cents with round-half-up at every derived
// step, not only at the end.
package money

import "math"

// RoundCents rounds v to two decimal places, half-up.
func RoundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Share returns the given fraction of v, rounded to cents.
func Share(v, fraction float64) float64 {
	return RoundCents(v * fraction)
}
