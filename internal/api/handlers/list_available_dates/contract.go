package list_available_dates

import (
	"context"

	listAvailableDates "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/list_available_dates"
)

type ListAvailableDatesUseCase interface {
	Execute(ctx context.Context, req *listAvailableDates.Request) (*listAvailableDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
