package domain

import "time"

// RuleType discriminates the availability-rule union. The set is closed:
// resolution code switches over it exhaustively.
type RuleType string

const (
	RuleBlackoutDate  RuleType = "blackout_date"
	RuleBlackoutRange RuleType = "blackout_range"
	RuleCapacityLimit RuleType = "capacity_limit"
	RuleBufferTime    RuleType = "buffer_time"
)

// AvailabilityRule is one row of the availability_rules table. Which pointer
// fields are set depends on Type; accessors below keep the union honest.
type AvailabilityRule struct {
	ID   int64
	Type RuleType

	// blackout_date
	Date *time.Time

	// blackout_range
	StartDate *time.Time
	EndDate   *time.Time
	Reason    *string

	// capacity_limit
	MaxConcurrentBookings *int
	MaxDailyBookings      *int

	// buffer_time
	BufferMinutes *int

	Priority  int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksDate reports whether a blackout rule covers the given date.
// Range bounds are inclusive. Non-blackout rules never block.
func (r *AvailabilityRule) BlocksDate(date time.Time) bool {
	day := Midnight(date)
	switch r.Type {
	case RuleBlackoutDate:
		return r.Date != nil && Midnight(*r.Date).Equal(day)
	case RuleBlackoutRange:
		if r.StartDate == nil || r.EndDate == nil {
			return false
		}
		return !day.Before(Midnight(*r.StartDate)) && !day.After(Midnight(*r.EndDate))
	case RuleCapacityLimit, RuleBufferTime:
		return false
	}
	return false
}

// CapacityPolicy is the resolved capacity_limit rule (or its defaults).
type CapacityPolicy struct {
	MaxConcurrentBookings int
	MaxDailyBookings      int
}

// Midnight truncates t to its date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
