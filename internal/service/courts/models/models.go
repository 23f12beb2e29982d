package models

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модели

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"` // indoor | outdoor
	BasePrice float64  `json:"basePrice"`
	Amenities []string `json:"amenities"`
}

// UpdateCourtRequest запрос на обновление корта
// Указываются только изменяемые поля
type UpdateCourtRequest struct {
	Name      *string   `json:"name,omitempty"`
	Type      *string   `json:"type,omitempty"`
	BasePrice *float64  `json:"basePrice,omitempty"`
	Amenities *[]string `json:"amenities,omitempty"`
}

// Response модели

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	BasePrice float64  `json:"basePrice"`
	Amenities []string `json:"amenities"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// Методы конвертации

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	amenities := c.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &CourtResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		BasePrice: c.BasePrice,
		Amenities: amenities,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	result := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}

	for _, c := range courts {
		if resp := FromDomainCourt(c); resp != nil {
			result.Courts = append(result.Courts, *resp)
		}
	}

	return result
}
