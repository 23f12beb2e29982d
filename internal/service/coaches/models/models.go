package models

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модели

// CreateCoachRequest запрос на добавление тренера
type CreateCoachRequest struct {
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	HourlyRate float64 `json:"hourlyRate"`
	Rating     float64 `json:"rating"`
	Available  bool    `json:"available"`
}

// UpdateCoachRequest запрос на обновление тренера
// Указываются только изменяемые поля
type UpdateCoachRequest struct {
	Name       *string  `json:"name,omitempty"`
	Specialty  *string  `json:"specialty,omitempty"`
	HourlyRate *float64 `json:"hourlyRate,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Available  *bool    `json:"available,omitempty"`
}

// Response модели

// CoachResponse ответ с данными тренера
type CoachResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	HourlyRate float64 `json:"hourlyRate"`
	Rating     float64 `json:"rating"`
	Available  bool    `json:"available"`
}

// CoachListResponse ответ со списком тренеров
type CoachListResponse struct {
	Coaches []CoachResponse `json:"coaches"`
}

// Методы конвертации

// FromDomainCoach конвертирует domain модель в DTO
func FromDomainCoach(c *domain.Coach) *CoachResponse {
	if c == nil {
		return nil
	}

	return &CoachResponse{
		ID:         c.ID,
		Name:       c.Name,
		Specialty:  c.Specialty,
		HourlyRate: c.HourlyRate,
		Rating:     c.Rating,
		Available:  c.Available,
	}
}

// FromDomainCoachList конвертирует список domain моделей в DTO
func FromDomainCoachList(coaches []*domain.Coach) *CoachListResponse {
	result := &CoachListResponse{
		Coaches: make([]CoachResponse, 0, len(coaches)),
	}

	for _, c := range coaches {
		if resp := FromDomainCoach(c); resp != nil {
			result.Coaches = append(result.Coaches, *resp)
		}
	}

	return result
}
