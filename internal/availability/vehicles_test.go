package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/ptr"
)

func fleet() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: 1, Name: "Cab 1", Type: domain.VehicleSUV, Capacity: 6, IsActive: true, IsOperational: true},
		{ID: 2, Name: "Cab 2", Type: domain.VehicleSUV, Capacity: 4, IsActive: true, IsOperational: true},
		{ID: 3, Name: "Sprinter", Type: domain.VehicleVan, Capacity: 12, IsActive: true, IsOperational: true},
		{ID: 4, Name: "Stretch", Type: domain.VehicleLimo, Capacity: 8, IsActive: true, IsOperational: true},
	}
}

func TestSelectVehicle_DefaultTypeByPartySize(t *testing.T) {
	// small parties default to an SUV
	got := SelectVehicle(fleet(), 3, nil)
	require.NotNil(t, got)
	assert.Equal(t, domain.VehicleSUV, got.Type)

	// larger parties default to a van
	got = SelectVehicle(fleet(), 8, nil)
	require.NotNil(t, got)
	assert.Equal(t, domain.VehicleVan, got.Type)
}

func TestSelectVehicle_TightestFit(t *testing.T) {
	// party of 3 fits both SUVs; the 4-seater wins over the 6-seater
	got := SelectVehicle(fleet(), 3, nil)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)

	// party of 5 only fits the 6-seater SUV
	got = SelectVehicle(fleet(), 5, ptr.Ptr(domain.VehicleSUV))
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
}

func TestSelectVehicle_TieGoesToLowestID(t *testing.T) {
	vehicles := []*domain.Vehicle{
		{ID: 7, Type: domain.VehicleSUV, Capacity: 6, IsActive: true, IsOperational: true},
		{ID: 3, Type: domain.VehicleSUV, Capacity: 6, IsActive: true, IsOperational: true},
	}

	got := SelectVehicle(vehicles, 4, nil)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.ID)
}

func TestSelectVehicle_ExplicitTypeWins(t *testing.T) {
	// a party of 2 asking for the limo gets the limo, not the default SUV
	got := SelectVehicle(fleet(), 2, ptr.Ptr(domain.VehicleLimo))
	require.NotNil(t, got)
	assert.Equal(t, domain.VehicleLimo, got.Type)
}

func TestSelectVehicle_PartyTooLarge(t *testing.T) {
	// largest van seats 12; a party of 14 has no vehicle
	assert.Nil(t, SelectVehicle(fleet(), 14, nil))
}

func TestSelectVehicle_IneligibleFiltered(t *testing.T) {
	vehicles := []*domain.Vehicle{
		{ID: 1, Type: domain.VehicleSUV, Capacity: 6, IsActive: false, IsOperational: true},
		{ID: 2, Type: domain.VehicleSUV, Capacity: 6, IsActive: true, IsOperational: false},
	}

	assert.Nil(t, SelectVehicle(vehicles, 2, nil))
}
