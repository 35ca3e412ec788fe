package list_vehicles

import (
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// VehicleResponse is one fleet vehicle in the catalog.
type VehicleResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// VehicleListResponse wraps the catalog with its count.
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Count    int               `json:"count"`
}

// FromDomainVehicles converts the fleet into the response shape.
func FromDomainVehicles(vehicles []*domain.Vehicle) *VehicleListResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleResponse{
			ID:       v.ID,
			Name:     v.Name,
			Type:     string(v.Type),
			Capacity: v.Capacity,
		})
	}
	return &VehicleListResponse{Vehicles: out, Count: len(out)}
}
