package rules

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules/models"
)

// buildRuleParams валидирует payload и собирает типизированные параметры правила
func buildRuleParams(ruleType string, payload models.RulePayload) (domain.RuleParams, error) {
	switch domain.RuleType(ruleType) {
	case domain.RuleTypeTime:
		return buildTimeParams(payload)
	case domain.RuleTypeDay:
		return buildDayParams(payload)
	case domain.RuleTypePremium:
		return buildPremiumParams(payload)
	default:
		return nil, fmt.Errorf("%w: unknown rule type %q", ErrInvalidInput, ruleType)
	}
}

func buildTimeParams(payload models.RulePayload) (domain.RuleParams, error) {
	if payload.StartHour == nil || payload.EndHour == nil || payload.Multiplier == nil {
		return nil, fmt.Errorf("%w: time rule requires startHour, endHour and multiplier", ErrInvalidInput)
	}

	startHour := *payload.StartHour
	endHour := *payload.EndHour

	if startHour < domain.MinRuleHour || startHour > domain.MaxRuleHour ||
		endHour < domain.MinRuleHour || endHour > domain.MaxRuleHour+1 {
		return nil, fmt.Errorf("%w: rule hours must be within the day", ErrInvalidInput)
	}

	if startHour >= endHour {
		return nil, fmt.Errorf("%w: startHour must be before endHour", ErrInvalidInput)
	}

	if *payload.Multiplier <= 0 {
		return nil, fmt.Errorf("%w: multiplier must be positive", ErrInvalidInput)
	}

	return domain.TimeRuleParams{
		StartHour:  startHour,
		EndHour:    endHour,
		Multiplier: *payload.Multiplier,
	}, nil
}

func buildDayParams(payload models.RulePayload) (domain.RuleParams, error) {
	if payload.Days == nil || payload.Surcharge == nil {
		return nil, fmt.Errorf("%w: day rule requires days and surcharge", ErrInvalidInput)
	}

	days := *payload.Days
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: day rule requires at least one day", ErrInvalidInput)
	}

	for _, d := range days {
		if d < domain.MinWeekdayIndex || d > domain.MaxWeekdayIndex {
			return nil, fmt.Errorf("%w: weekday index %d out of range 0..6", ErrInvalidInput, d)
		}
	}

	if *payload.Surcharge < 0 {
		return nil, fmt.Errorf("%w: surcharge must be non-negative", ErrInvalidInput)
	}

	return domain.DayRuleParams{
		Days:      days,
		Surcharge: *payload.Surcharge,
	}, nil
}

func buildPremiumParams(payload models.RulePayload) (domain.RuleParams, error) {
	if payload.Surcharge == nil {
		return nil, fmt.Errorf("%w: premium rule requires surcharge", ErrInvalidInput)
	}

	if *payload.Surcharge < 0 {
		return nil, fmt.Errorf("%w: surcharge must be non-negative", ErrInvalidInput)
	}

	return domain.PremiumRuleParams{
		Surcharge: *payload.Surcharge,
	}, nil
}

// mergePayload накладывает частичный payload поверх текущих параметров правила
func mergePayload(current domain.RuleParams, patch models.RulePayload) models.RulePayload {
	merged := patch

	switch params := current.(type) {
	case domain.TimeRuleParams:
		if merged.StartHour == nil {
			startHour := params.StartHour
			merged.StartHour = &startHour
		}
		if merged.EndHour == nil {
			endHour := params.EndHour
			merged.EndHour = &endHour
		}
		if merged.Multiplier == nil {
			multiplier := params.Multiplier
			merged.Multiplier = &multiplier
		}
	case domain.DayRuleParams:
		if merged.Days == nil {
			days := params.Days
			merged.Days = &days
		}
		if merged.Surcharge == nil {
			surcharge := params.Surcharge
			merged.Surcharge = &surcharge
		}
	case domain.PremiumRuleParams:
		if merged.Surcharge == nil {
			surcharge := params.Surcharge
			merged.Surcharge = &surcharge
		}
	}

	return merged
}
