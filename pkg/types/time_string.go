package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire and storage format for times of day.
const timeLayout = "15:04"

var (
	// ErrInvalidTimeFormat is returned when a string is not a valid HH:MM time.
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange is returned when arithmetic leaves the 00:00-23:59 day window.
	ErrTimeOutOfRange = errors.New("time is out of the day range")
)

// TimeString is a time of day in "HH:MM" form. It is comparable, orderable
// and stores/scans as a plain string, which keeps booking rows readable.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates s.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= 24*60 {
		return "", ErrTimeOutOfRange
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate checks the HH:MM format.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns minutes since midnight. The value must be valid.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time m minutes later. Fails when the result leaves
// the day window, bookings never cross midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	base, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(base + m)
}

// IsBefore reports whether t is strictly earlier than other.
// Lexicographic comparison is correct for zero-padded HH:MM.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Accepts TEXT and TIME column representations.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		if len(v) > 5 {
			v = v[:5] // "HH:MM:SS" from a TIME column
		}
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}
