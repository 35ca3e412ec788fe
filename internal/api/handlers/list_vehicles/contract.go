package list_vehicles

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

type VehicleRepository interface {
	ListEligible(ctx context.Context) ([]*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
