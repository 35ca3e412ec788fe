package update_capacity_rule

import (
	"errors"
	"net/http"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/rules"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/rules/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid capacity values"
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/availability-rules/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability-rules/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCapacity(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PUT /admin/availability-rules/capacity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/availability-rules/capacity - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability-rules/capacity - Rules updated: concurrent=%d daily=%d buffer=%d",
		result.Effective.MaxConcurrentBookings, result.Effective.MaxDailyBookings, result.Effective.BufferMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
