package list_vehicles

import (
	"net/http"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers"
)

type Handler struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

func NewHandler(vehicleRepo VehicleRepository, logger Logger) *Handler {
	return &Handler{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Handle GET /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleRepo.ListEligible(r.Context())
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles - Listed %d vehicles", len(vehicles))
	handlers.RespondJSON(w, http.StatusOK, FromDomainVehicles(vehicles))
}
