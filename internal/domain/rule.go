package domain

// RuleType represents the category of a pricing rule
type RuleType string

const (
	RuleTypeTime    RuleType = "time"
	RuleTypeDay     RuleType = "day"
	RuleTypePremium RuleType = "premium"
)

// IsValid returns true if the rule type is one of the known values
func (t RuleType) IsValid() bool {
	return t == RuleTypeTime || t == RuleTypeDay || t == RuleTypePremium
}

// PricingRule represents a single entry of the rule catalog
// Параметры правила хранятся в типизированном payload (Params), соответствующем
// категории правила - комбинации "категория time с полями day" непредставимы
type PricingRule struct {
	ID     int64
	Name   string
	Active bool
	Params RuleParams
}

// Type returns the rule category derived from its payload
func (r *PricingRule) Type() RuleType {
	if r.Params == nil {
		return ""
	}
	return r.Params.RuleType()
}

// RuleParams параметры правила, специфичные для его категории
type RuleParams interface {
	RuleType() RuleType
}

// TimeRuleParams множитель для слотов, попадающих в интервал [StartHour, EndHour)
// Multiplier > 1 - надбавка, < 1 - скидка
type TimeRuleParams struct {
	StartHour  int
	EndHour    int
	Multiplier float64
}

func (TimeRuleParams) RuleType() RuleType { return RuleTypeTime }

// MatchesHour returns true if the hour falls into the half-open interval [StartHour, EndHour)
func (p TimeRuleParams) MatchesHour(hour int) bool {
	return hour >= p.StartHour && hour < p.EndHour
}

// DayRuleParams фиксированная надбавка для указанных дней недели
// Дни недели в индексации 0=воскресенье .. 6=суббота
type DayRuleParams struct {
	Days      []int
	Surcharge float64
}

func (DayRuleParams) RuleType() RuleType { return RuleTypeDay }

// MatchesDay returns true if the weekday index is in the rule's day set
func (p DayRuleParams) MatchesDay(weekday int) bool {
	for _, d := range p.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// PremiumRuleParams фиксированная надбавка для премиальных кортов
// Применяется только к indoor кортам с базовой ценой >= PremiumCourtPriceThreshold
type PremiumRuleParams struct {
	Surcharge float64
}

func (PremiumRuleParams) RuleType() RuleType { return RuleTypePremium }
