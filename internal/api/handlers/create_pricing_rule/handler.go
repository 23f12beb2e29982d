package create_pricing_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRuleData    = "некорректные данные правила ценообразования"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle POST /api/v1/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /pricing-rules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("POST /pricing-rules - Invalid rule data: user_id=%d, err=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRuleData)

		default:
			h.logger.Error("POST /pricing-rules - Failed to create rule: user_id=%d, err=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing-rules - Rule created: rule_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
