package domain

import "time"

// VehicleType classifies fleet vehicles
type VehicleType string

const (
	VehicleSUV  VehicleType = "suv"
	VehicleVan  VehicleType = "van"
	VehicleLimo VehicleType = "limo"
)

// KnownVehicleType reports whether t is a type the fleet can carry.
func KnownVehicleType(t VehicleType) bool {
	switch t {
	case VehicleSUV, VehicleVan, VehicleLimo:
		return true
	}
	return false
}

// DefaultVehicleType derives a vehicle type when the caller did not specify
// one: parties of four or fewer ride an SUV, larger parties a van.
func DefaultVehicleType(partySize int) VehicleType {
	if partySize <= DefaultVehicleTypePartyCutoff {
		return VehicleSUV
	}
	return VehicleVan
}

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID            int64
	Name          string
	Type          VehicleType
	Capacity      int
	IsActive      bool
	IsOperational bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsEligible reports whether the vehicle may be assigned to tours.
func (v *Vehicle) IsEligible() bool {
	return v.IsActive && v.IsOperational
}
