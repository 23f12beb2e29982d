package models

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модели

// RulePayload параметры правила в запросах и ответах
// Заполняется подмножество полей, соответствующее категории правила
type RulePayload struct {
	StartHour  *int     `json:"startHour,omitempty"`
	EndHour    *int     `json:"endHour,omitempty"`
	Multiplier *float64 `json:"multiplier,omitempty"`
	Days       *[]int   `json:"days,omitempty"`
	Surcharge  *float64 `json:"surcharge,omitempty"`
}

// CreateRuleRequest запрос на создание правила ценообразования
type CreateRuleRequest struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"` // time | day | premium
	Active  bool        `json:"active"`
	Payload RulePayload `json:"payload"`
}

// UpdateRuleRequest запрос на обновление правила
// Категория правила не меняется; указываются только изменяемые поля
type UpdateRuleRequest struct {
	Name    *string      `json:"name,omitempty"`
	Active  *bool        `json:"active,omitempty"`
	Payload *RulePayload `json:"payload,omitempty"`
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Active  bool        `json:"active"`
	Payload RulePayload `json:"payload"`
}

// RuleListResponse ответ со списком правил в порядке каталога
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.PricingRule) *RuleResponse {
	if r == nil {
		return nil
	}

	resp := &RuleResponse{
		ID:     r.ID,
		Name:   r.Name,
		Type:   string(r.Type()),
		Active: r.Active,
	}

	switch params := r.Params.(type) {
	case domain.TimeRuleParams:
		startHour := params.StartHour
		endHour := params.EndHour
		multiplier := params.Multiplier
		resp.Payload = RulePayload{
			StartHour:  &startHour,
			EndHour:    &endHour,
			Multiplier: &multiplier,
		}
	case domain.DayRuleParams:
		days := params.Days
		surcharge := params.Surcharge
		resp.Payload = RulePayload{
			Days:      &days,
			Surcharge: &surcharge,
		}
	case domain.PremiumRuleParams:
		surcharge := params.Surcharge
		resp.Payload = RulePayload{
			Surcharge: &surcharge,
		}
	}

	return resp
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.PricingRule) *RuleListResponse {
	result := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}

	for _, r := range rules {
		if resp := FromDomainRule(r); resp != nil {
			result.Rules = append(result.Rules, *resp)
		}
	}

	return result
}
