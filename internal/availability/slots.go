package availability

import (
	"fmt"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/types"
)

// GenerateSlots enumerates every candidate window for a tour of the given
// duration: starts on the hour from 09:00 through 18:00 minus the duration,
// inclusive. Pure and total; existing bookings are filtered out later by the
// conflict detector. Returns nil for durations that cannot fit the day.
func GenerateSlots(durationHours int) []domain.TimeSlot {
	lastStart := domain.BusinessCloseHour - durationHours
	if lastStart < domain.BusinessOpenHour {
		return nil
	}

	slots := make([]domain.TimeSlot, 0, lastStart-domain.BusinessOpenHour+1)
	for h := domain.BusinessOpenHour; h <= lastStart; h++ {
		slots = append(slots, domain.TimeSlot{
			Start: hourToTime(h),
			End:   hourToTime(h + durationHours),
		})
	}
	return slots
}

// SlotFor returns the single candidate slot starting at the given time, or
// false when that start is not on the hourly grid for this duration.
func SlotFor(start types.TimeString, durationHours int) (domain.TimeSlot, bool) {
	for _, slot := range GenerateSlots(durationHours) {
		if slot.Start == start {
			return slot, true
		}
	}
	return domain.TimeSlot{}, false
}

func hourToTime(h int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", h))
}
