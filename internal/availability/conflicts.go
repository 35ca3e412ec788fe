package availability

import (
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

const minutesPerDay = 24 * 60

// CountTowardDailyCap counts the bookings that consume the day-level
// staffing cap. Checked once per date, not per slot.
func CountTowardDailyCap(bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b.CountsTowardDailyCap() {
			count++
		}
	}
	return count
}

// FilterOpenSlots keeps the candidate slots that stay under the concurrency
// ceiling after every counted booking is expanded by the buffer on both
// ends. The caller must already have applied the daily cap.
func FilterOpenSlots(slots []domain.TimeSlot, bookings []*domain.Booking, bufferMinutes, maxConcurrent int) []domain.TimeSlot {
	open := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if SlotOpen(slot, bookings, bufferMinutes, maxConcurrent) {
			open = append(open, slot)
		}
	}
	return open
}

// SlotOpen reports whether the slot stays strictly under maxConcurrent
// buffered overlaps.
func SlotOpen(slot domain.TimeSlot, bookings []*domain.Booking, bufferMinutes, maxConcurrent int) bool {
	return CountBufferedOverlaps(slot, bookings, bufferMinutes) < maxConcurrent
}

// CountBufferedOverlaps counts the bookings whose buffer-expanded interval
// overlaps the candidate slot. The buffer models turnaround time between
// tours sharing vehicles and guides. Half-open interval test:
// slot.start < bufferedEnd && slot.end > bufferedStart, so back-to-back
// windows only conflict through the buffer itself.
func CountBufferedOverlaps(slot domain.TimeSlot, bookings []*domain.Booking, bufferMinutes int) int {
	slotStart, err := slot.Start.Minutes()
	if err != nil {
		return 0
	}
	slotEnd, err := slot.End.Minutes()
	if err != nil {
		return 0
	}

	count := 0
	for _, b := range bookings {
		if !b.CountsTowardCapacity() {
			continue
		}

		bStart, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}
		bEnd, err := b.EndTime.Minutes()
		if err != nil {
			continue
		}

		// Buffer expansion clamped to the day; tours never cross midnight.
		bStart -= bufferMinutes
		if bStart < 0 {
			bStart = 0
		}
		bEnd += bufferMinutes
		if bEnd > minutesPerDay {
			bEnd = minutesPerDay
		}

		if slotStart < bEnd && slotEnd > bStart {
			count++
		}
	}
	return count
}
