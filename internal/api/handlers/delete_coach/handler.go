package delete_coach

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches"
)

const (
	msgInvalidCoachID = "некорректный ID тренера"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgCoachNotFound  = "тренер не найден"
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

// Handle DELETE /api/v1/coaches/{coachId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /coaches/{coachId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /coaches/{coachId} - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	if err := h.service.Delete(r.Context(), coachID); err != nil {
		switch {
		case errors.Is(err, coaches.ErrCoachNotFound):
			h.logger.Warn("DELETE /coaches/{coachId} - Coach not found: coach_id=%d", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		default:
			h.logger.Error("DELETE /coaches/{coachId} - Failed to delete coach: coach_id=%d, err=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /coaches/{coachId} - Coach deleted: coach_id=%d, user_id=%d", coachID, userID)
	w.WriteHeader(http.StatusNoContent)
}
