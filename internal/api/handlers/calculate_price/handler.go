package calculate_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-CourtBookingService/internal/usecase/calculate_price"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidResourceCount = "количество инвентаря не может быть отрицательным"
	msgCourtNotFound        = "корт не найден"
	msgCoachNotFound        = "тренер не найден"
	msgCoachNotAvailable    = "тренер недоступен для найма"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price-quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /price-quotes - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidTimeFormat):
			h.logger.Warn("POST /price-quotes - Invalid time format: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, calculatePrice.ErrInvalidResourceCount):
			h.logger.Warn("POST /price-quotes - Negative resource count: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidResourceCount)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /price-quotes - Invalid input: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, calculatePrice.ErrCourtNotFound):
			h.logger.Warn("POST /price-quotes - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, calculatePrice.ErrCoachNotFound):
			h.logger.Warn("POST /price-quotes - Coach not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, calculatePrice.ErrCoachNotAvailable):
			h.logger.Warn("POST /price-quotes - Coach not available: court_id=%d", req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgCoachNotAvailable)

		default:
			h.logger.Error("POST /price-quotes - Failed to calculate price: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /price-quotes - Quote calculated: court_id=%d, total=%.2f",
		req.CourtID, result.Breakdown.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
