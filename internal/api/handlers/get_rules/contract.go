package get_rules

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/rules/models"
)

type RulesService interface {
	GetRules(ctx context.Context) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
