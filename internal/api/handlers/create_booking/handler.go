package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidResourceCount = "количество инвентаря не может быть отрицательным"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgCourtNotFound        = "корт не найден"
	msgCoachNotFound        = "тренер не найден"
	msgCoachNotAvailable    = "тренер недоступен для найма"
	msgInsufficientStock    = "запрошенного инвентаря нет в наличии"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgDateTooFar           = "дата бронирования слишком далеко в будущем"
	msgInvalidTimeSlot      = "время начала вне сетки слотов клуба"
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
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInsufficientStock):
			h.logger.Warn("POST /bookings - Insufficient stock: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondConflict(w, msgInsufficientStock)

		case errors.Is(err, createBooking.ErrCoachNotAvailable):
			h.logger.Warn("POST /bookings - Coach not available: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondConflict(w, msgCoachNotAvailable)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCoachNotFound):
			h.logger.Warn("POST /bookings - Coach not found: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidTimeFormat):
			h.logger.Warn("POST /bookings - Invalid time format: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidResourceCount):
			h.logger.Warn("POST /bookings - Negative resource count: user_id=%d, court_id=%d", userID, req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidResourceCount)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, court_id=%d, error=%v", userID, req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, ref=%s, user_id=%d",
		result.ID, result.Ref, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
