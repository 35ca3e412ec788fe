package update_capacity_rule

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/rules/models"
)

type RulesService interface {
	UpdateCapacity(ctx context.Context, req *models.UpdateCapacityRequest) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
