package create_coach

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCoachData   = "некорректные данные тренера"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service CoachService
	logger  Logger
}

func NewHandler(service CoachService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/coaches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /coaches - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, coaches.ErrInvalidInput):
			h.logger.Warn("POST /coaches - Invalid coach data: user_id=%d, err=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidCoachData)

		default:
			h.logger.Error("POST /coaches - Failed to create coach: user_id=%d, err=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches - Coach created: coach_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
