package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/bookings"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/bookings/models"
)

const (
	msgInvalidFrom   = "invalid from parameter, expected YYYY-MM-DD"
	msgInvalidTo     = "invalid to parameter, expected YYYY-MM-DD"
	msgInvalidStatus = "invalid status parameter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?from=&to=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if from := query.Get("from"); from != "" {
		t, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.StartDate = &t
	}
	if to := query.Get("to"); to != "" {
		t, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.EndDate = &t
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
		// listing by cancelled status only makes sense with inactive rows included
		req.IncludeInactive = status == string(domain.StatusCancelled)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings", result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
