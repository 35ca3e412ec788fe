package get_rules

import (
	"net/http"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers"
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

// Handle GET /api/v1/admin/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetRules(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability-rules - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/availability-rules - Listed %d rules", len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
