package list_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers"
	listAvailableDates "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/list_available_dates"
)

const (
	msgInvalidYear  = "invalid year parameter"
	msgInvalidMonth = "invalid month parameter, expected 1-12"
	msgInvalidInput = "invalid availability request"
)

type Handler struct {
	useCase ListAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/dates?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /availability/dates - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /availability/dates - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listAvailableDates.Request{
		Year:  year,
		Month: month,
	})
	if err != nil {
		switch {
		case errors.Is(err, listAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /availability/dates - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/dates - Failed: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/dates - year=%d month=%d count=%d", year, month, result.Count)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
