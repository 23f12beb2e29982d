package update_pricing_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules/models"
)

const (
	msgInvalidRuleID      = "некорректный ID правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRuleData    = "некорректные данные правила ценообразования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRuleNotFound       = "правило ценообразования не найдено"
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

// Handle PUT /api/v1/pricing-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /pricing-rules/{ruleId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	ruleID, err := strconv.ParseInt(vars["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /pricing-rules/{ruleId} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pricing-rules/{ruleId} - Invalid request body: rule_id=%d, err=%v", ruleID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrRuleNotFound):
			h.logger.Warn("PUT /pricing-rules/{ruleId} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PUT /pricing-rules/{ruleId} - Invalid rule data: rule_id=%d, err=%v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidRuleData)

		default:
			h.logger.Error("PUT /pricing-rules/{ruleId} - Failed to update rule: rule_id=%d, err=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /pricing-rules/{ruleId} - Rule updated: rule_id=%d, user_id=%d", ruleID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
