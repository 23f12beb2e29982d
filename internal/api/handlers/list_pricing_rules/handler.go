package list_pricing_rules

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /pricing-rules - Failed to list pricing rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pricing-rules - Pricing rules listed: count=%d", len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
