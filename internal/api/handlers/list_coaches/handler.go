package list_coaches

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
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

// Handle GET /api/v1/coaches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /coaches - Failed to list coaches: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /coaches - Coaches listed: count=%d", len(result.Coaches))
	handlers.RespondJSON(w, http.StatusOK, result)
}
