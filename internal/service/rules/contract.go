package rules

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
)

// RulesRepository is the storage surface the service needs.
type RulesRepository interface {
	ListActive(ctx context.Context) ([]*domain.AvailabilityRule, error)
	UpsertCapacityLimit(ctx context.Context, maxConcurrent, maxDaily int) error
	UpsertBufferTime(ctx context.Context, bufferMinutes int) error
}

// Logger is the leveled logger used across services.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
