package availability

import (
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// SelectVehicle picks the vehicle for a party: among active and operational
// vehicles of the resolved type with enough seats, the tightest fit wins so
// larger vehicles stay free for larger parties. Ties go to the lowest id.
// Returns nil when no vehicle qualifies; that outcome is independent of
// time-slot availability.
func SelectVehicle(vehicles []*domain.Vehicle, partySize int, requested *domain.VehicleType) *domain.Vehicle {
	resolved := domain.DefaultVehicleType(partySize)
	if requested != nil {
		resolved = *requested
	}

	var best *domain.Vehicle
	for _, v := range vehicles {
		if !v.IsEligible() || v.Type != resolved || v.Capacity < partySize {
			continue
		}
		if best == nil || v.Capacity < best.Capacity ||
			(v.Capacity == best.Capacity && v.ID < best.ID) {
			best = v
		}
	}
	return best
}
