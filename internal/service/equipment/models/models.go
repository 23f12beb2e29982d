package models

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модели

// UpdateEquipmentRequest запрос на обновление позиции инвентаря
// Указываются только изменяемые поля
type UpdateEquipmentRequest struct {
	Name         *string  `json:"name,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	TotalStock   *int     `json:"totalStock,omitempty"`
}

// Response модели

// EquipmentResponse ответ с данными позиции инвентаря
type EquipmentResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	PricePerHour   float64 `json:"pricePerHour"`
	TotalStock     int     `json:"totalStock"`
	AvailableStock int     `json:"availableStock"`
}

// EquipmentListResponse ответ со списком инвентаря
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// Методы конвертации

// FromDomainEquipment конвертирует domain модель в DTO
func FromDomainEquipment(e *domain.Equipment) *EquipmentResponse {
	if e == nil {
		return nil
	}

	return &EquipmentResponse{
		ID:             e.ID,
		Name:           e.Name,
		Type:           string(e.Type),
		PricePerHour:   e.PricePerHour,
		TotalStock:     e.TotalStock,
		AvailableStock: e.AvailableStock,
	}
}

// FromDomainEquipmentList конвертирует список domain моделей в DTO
func FromDomainEquipmentList(items []*domain.Equipment) *EquipmentListResponse {
	result := &EquipmentListResponse{
		Equipment: make([]EquipmentResponse, 0, len(items)),
	}

	for _, e := range items {
		if resp := FromDomainEquipment(e); resp != nil {
			result.Equipment = append(result.Equipment, *resp)
		}
	}

	return result
}
