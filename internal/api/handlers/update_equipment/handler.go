package update_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/equipment"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/equipment/models"
)

const (
	msgInvalidEquipmentID   = "некорректный ID инвентаря"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidEquipmentData = "некорректные данные инвентаря"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgEquipmentNotFound    = "позиция инвентаря не найдена"
)

type Handler struct {
	service EquipmentService
	logger  Logger
}

func NewHandler(service EquipmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/equipment/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /equipment/{equipmentId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	equipmentID, err := strconv.ParseInt(vars["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /equipment/{equipmentId} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	var req models.UpdateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /equipment/{equipmentId} - Invalid request body: equipment_id=%d, err=%v", equipmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), equipmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			h.logger.Warn("PUT /equipment/{equipmentId} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, equipment.ErrInvalidInput):
			h.logger.Warn("PUT /equipment/{equipmentId} - Invalid equipment data: equipment_id=%d, err=%v", equipmentID, err)
			handlers.RespondBadRequest(w, msgInvalidEquipmentData)

		default:
			h.logger.Error("PUT /equipment/{equipmentId} - Failed to update equipment: equipment_id=%d, err=%v", equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /equipment/{equipmentId} - Equipment updated: equipment_id=%d, user_id=%d", equipmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
