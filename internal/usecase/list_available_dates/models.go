package list_available_dates

import "time"

// Request asks which dates of a month can take at least one booking
type Request struct {
	Year  int
	Month int // 1-12
}

// Response lists the open dates of the month
type Response struct {
	Year           int
	Month          int
	AvailableDates []time.Time
	Count          int
}
