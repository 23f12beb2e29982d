package update_coach

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches/models"
)

const (
	msgInvalidCoachID     = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCoachData   = "некорректные данные тренера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCoachNotFound      = "тренер не найден"
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

// Handle PUT /api/v1/coaches/{coachId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /coaches/{coachId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /coaches/{coachId} - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	var req models.UpdateCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /coaches/{coachId} - Invalid request body: coach_id=%d, err=%v", coachID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), coachID, &req)
	if err != nil {
		switch {
		case errors.Is(err, coaches.ErrCoachNotFound):
			h.logger.Warn("PUT /coaches/{coachId} - Coach not found: coach_id=%d", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, coaches.ErrInvalidInput):
			h.logger.Warn("PUT /coaches/{coachId} - Invalid coach data: coach_id=%d, err=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidCoachData)

		default:
			h.logger.Error("PUT /coaches/{coachId} - Failed to update coach: coach_id=%d, err=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /coaches/{coachId} - Coach updated: coach_id=%d, user_id=%d", coachID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
