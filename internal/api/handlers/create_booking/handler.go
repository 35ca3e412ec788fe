package create_booking

import (
	"errors"
	"net/http"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers"
	createBooking "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or start time, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput       = "invalid booking request"
	msgPastDate           = "tour date must not be in the past"
	msgDateBlocked        = "the requested date is blocked"
	msgDailyCapReached    = "daily booking limit reached for the requested date"
	msgInvalidTimeSlot    = "start time is not a bookable slot for this duration"
	msgSlotNotAvailable   = "the requested time slot is not available"
	msgNoSuitableVehicle  = "no vehicle can accommodate the party on this date"
	msgCustomerNotFound   = "customer not found"
	msgSlotJustTaken      = "slot no longer available, please retry"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotJustTaken):
			h.logger.Warn("POST /bookings - Slot taken concurrently: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotJustTaken)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateBlocked)

		case errors.Is(err, createBooking.ErrDailyCapReached):
			h.logger.Warn("POST /bookings - Daily cap reached: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDailyCapReached)

		case errors.Is(err, createBooking.ErrNoSuitableVehicle):
			h.logger.Warn("POST /bookings - No suitable vehicle: date=%s, party_size=%d", req.Date, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgNoSuitableVehicle)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Past date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, customer_id=%d, error=%v",
				req.Date, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, date=%s, start=%s, customer_id=%d",
		result.ID, req.Date, req.StartTime, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, req.CustomerID))
}
