package check_availability

import (
	"errors"
	"net/http"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers"
	checkAvailability "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid availability request"
	msgPastDate           = "tour date must not be in the past"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDate):
			h.logger.Warn("POST /availability/check - Past date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/check - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - date=%s available=%t reason=%s",
		req.Date, result.Available, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
