package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Дефолтный каталог правил из seed данных
func defaultRules() []*domain.PricingRule {
	return []*domain.PricingRule{
		{ID: 1, Name: "Peak Hours", Active: true, Params: domain.TimeRuleParams{StartHour: 18, EndHour: 21, Multiplier: 1.5}},
		{ID: 2, Name: "Morning Discount", Active: true, Params: domain.TimeRuleParams{StartHour: 6, EndHour: 9, Multiplier: 0.8}},
		{ID: 3, Name: "Weekend Surcharge", Active: true, Params: domain.DayRuleParams{Days: []int{0, 6}, Surcharge: 10}},
		{ID: 4, Name: "Premium Court Fee", Active: true, Params: domain.PremiumRuleParams{Surcharge: 5}},
	}
}

func defaultEquipmentPrices() domain.EquipmentPrices {
	return domain.EquipmentPrices{
		domain.EquipmentTypeRacket:      5,
		domain.EquipmentTypeShoes:       3,
		domain.EquipmentTypeShuttlecock: 8,
	}
}

// Суббота
var saturday = time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC)

// Среда
var wednesday = time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)

func TestCalculatePrice_PremiumCourtSaturdayPeakWithRacket(t *testing.T) {
	court := &domain.Court{ID: 1, Name: "Court A", Type: domain.CourtTypeIndoor, BasePrice: 25}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court:           court,
		Date:            saturday,
		Hour:            19,
		Resources:       domain.ResourceSelection{Rackets: 1},
		Rules:           defaultRules(),
		EquipmentPrices: defaultEquipmentPrices(),
	})

	assert.Equal(t, 25.0, breakdown.BasePrice)
	assert.Equal(t, 12.5, breakdown.PeakHourFee) // 25 * (1.5 - 1)
	assert.Equal(t, 10.0, breakdown.WeekendFee)
	assert.Equal(t, 5.0, breakdown.PremiumCourtFee)
	assert.Equal(t, 5.0, breakdown.EquipmentFee)
	assert.Equal(t, 0.0, breakdown.CoachFee)
	assert.Equal(t, 57.5, breakdown.Total)
}

func TestCalculatePrice_MorningDiscountIsNegativeFee(t *testing.T) {
	court := &domain.Court{ID: 2, Name: "Court B", Type: domain.CourtTypeIndoor, BasePrice: 20}

	rules := []*domain.PricingRule{
		{ID: 2, Name: "Morning Discount", Active: true, Params: domain.TimeRuleParams{StartHour: 6, EndHour: 9, Multiplier: 0.8}},
	}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court: court,
		Date:  wednesday,
		Hour:  7,
		Rules: rules,
	})

	assert.InDelta(t, -4.0, breakdown.PeakHourFee, 1e-9) // 20 * (0.8 - 1)
	assert.InDelta(t, 16.0, breakdown.Total, 1e-9)
}

func TestCalculatePrice_NoActiveRules(t *testing.T) {
	court := &domain.Court{ID: 1, Name: "Court A", Type: domain.CourtTypeIndoor, BasePrice: 25}

	rules := defaultRules()
	for _, r := range rules {
		r.Active = false
	}

	coach := &domain.Coach{ID: 1, Name: "Sarah Chen", HourlyRate: 40, Available: true}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court:           court,
		Date:            saturday,
		Hour:            19,
		Resources:       domain.ResourceSelection{Rackets: 2, Shoes: 1},
		Coach:           coach,
		Rules:           rules,
		EquipmentPrices: defaultEquipmentPrices(),
	})

	// Без активных правил: base + equipment + coach
	assert.Equal(t, 0.0, breakdown.PeakHourFee)
	assert.Equal(t, 0.0, breakdown.WeekendFee)
	assert.Equal(t, 0.0, breakdown.PremiumCourtFee)
	assert.Equal(t, 13.0, breakdown.EquipmentFee) // 2*5 + 1*3
	assert.Equal(t, 40.0, breakdown.CoachFee)
	assert.Equal(t, 78.0, breakdown.Total)
}

func TestCalculatePrice_CoachOnly(t *testing.T) {
	court := &domain.Court{ID: 2, Name: "Court B", Type: domain.CourtTypeIndoor, BasePrice: 20}
	coach := &domain.Coach{ID: 1, Name: "Sarah Chen", HourlyRate: 40, Available: true}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court: court,
		Date:  wednesday,
		Hour:  10,
		Coach: coach,
		Rules: defaultRules(),
	})

	assert.Equal(t, 40.0, breakdown.CoachFee)
	assert.Equal(t, 60.0, breakdown.Total)
}

func TestCalculatePrice_TotalFlooredAtZero(t *testing.T) {
	court := &domain.Court{ID: 3, Name: "Court C", Type: domain.CourtTypeOutdoor, BasePrice: 10}

	// Скидка превышает базовую цену: 10 * (-0.5 - 1) = -15
	rules := []*domain.PricingRule{
		{ID: 1, Name: "Deep Discount", Active: true, Params: domain.TimeRuleParams{StartHour: 0, EndHour: 24, Multiplier: -0.5}},
	}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court: court,
		Date:  wednesday,
		Hour:  10,
		Rules: rules,
	})

	assert.Equal(t, -15.0, breakdown.PeakHourFee)
	assert.Equal(t, 0.0, breakdown.Total)
	assert.GreaterOrEqual(t, breakdown.Total, 0.0)
}

func TestCalculatePrice_OverlappingTimeRulesLastWins(t *testing.T) {
	court := &domain.Court{ID: 2, Name: "Court B", Type: domain.CourtTypeIndoor, BasePrice: 20}

	// Оба правила активны и покрывают час 19: в режиме override применяется
	// последнее по порядку каталога, а не сумма эффектов
	rules := []*domain.PricingRule{
		{ID: 1, Name: "Peak Hours", Active: true, Params: domain.TimeRuleParams{StartHour: 18, EndHour: 21, Multiplier: 1.5}},
		{ID: 5, Name: "Evening Special", Active: true, Params: domain.TimeRuleParams{StartHour: 19, EndHour: 20, Multiplier: 1.2}},
	}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court: court,
		Date:  wednesday,
		Hour:  19,
		Rules: rules,
	})

	// 20 * (1.2 - 1), не 20*0.5 + 20*0.2
	assert.InDelta(t, 4.0, breakdown.PeakHourFee, 1e-9)
	assert.InDelta(t, 24.0, breakdown.Total, 1e-9)
}

func TestCalculatePrice_AccumulateModeSumsEffects(t *testing.T) {
	court := &domain.Court{ID: 2, Name: "Court B", Type: domain.CourtTypeIndoor, BasePrice: 20}

	rules := []*domain.PricingRule{
		{ID: 1, Name: "Peak Hours", Active: true, Params: domain.TimeRuleParams{StartHour: 18, EndHour: 21, Multiplier: 1.5}},
		{ID: 5, Name: "Evening Special", Active: true, Params: domain.TimeRuleParams{StartHour: 19, EndHour: 20, Multiplier: 1.2}},
	}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court:       court,
		Date:        wednesday,
		Hour:        19,
		Rules:       rules,
		Composition: domain.CompositionAccumulate,
	})

	// 20*0.5 + 20*0.2
	assert.InDelta(t, 14.0, breakdown.PeakHourFee, 1e-9)
	assert.InDelta(t, 34.0, breakdown.Total, 1e-9)
}

func TestCalculatePrice_PremiumAppliesOnlyToPremiumCourts(t *testing.T) {
	rules := defaultRules()

	tests := []struct {
		name     string
		court    *domain.Court
		expected float64
	}{
		{
			name:     "indoor at threshold",
			court:    &domain.Court{Type: domain.CourtTypeIndoor, BasePrice: 25},
			expected: 5,
		},
		{
			name:     "indoor above threshold",
			court:    &domain.Court{Type: domain.CourtTypeIndoor, BasePrice: 35},
			expected: 5,
		},
		{
			name:     "indoor below threshold",
			court:    &domain.Court{Type: domain.CourtTypeIndoor, BasePrice: 20},
			expected: 0,
		},
		{
			name:     "outdoor above threshold",
			court:    &domain.Court{Type: domain.CourtTypeOutdoor, BasePrice: 30},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := domain.CalculatePrice(domain.QuoteInput{
				Court: tt.court,
				Date:  wednesday,
				Hour:  10,
				Rules: rules,
			})
			assert.Equal(t, tt.expected, breakdown.PremiumCourtFee)
		})
	}
}

func TestCalculatePrice_TimeRuleBoundariesHalfOpen(t *testing.T) {
	court := &domain.Court{Type: domain.CourtTypeOutdoor, BasePrice: 20}
	rules := []*domain.PricingRule{
		{ID: 1, Name: "Peak Hours", Active: true, Params: domain.TimeRuleParams{StartHour: 18, EndHour: 21, Multiplier: 1.5}},
	}

	quote := func(hour int) domain.PricingBreakdown {
		return domain.CalculatePrice(domain.QuoteInput{Court: court, Date: wednesday, Hour: hour, Rules: rules})
	}

	assert.Equal(t, 0.0, quote(17).PeakHourFee)
	assert.Equal(t, 10.0, quote(18).PeakHourFee) // Начало интервала включается
	assert.Equal(t, 10.0, quote(20).PeakHourFee)
	assert.Equal(t, 0.0, quote(21).PeakHourFee) // Конец интервала не включается
}

func TestCalculatePrice_UnknownEquipmentTypeContributesZero(t *testing.T) {
	court := &domain.Court{Type: domain.CourtTypeOutdoor, BasePrice: 15}

	// Каталог без shuttlecock: выбранные воланы не влияют на цену
	prices := domain.EquipmentPrices{
		domain.EquipmentTypeRacket: 5,
	}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court:           court,
		Date:            wednesday,
		Hour:            10,
		Resources:       domain.ResourceSelection{Rackets: 1, Shuttlecocks: 3},
		Rules:           nil,
		EquipmentPrices: prices,
	})

	assert.Equal(t, 5.0, breakdown.EquipmentFee)
}

func TestCalculatePrice_Idempotent(t *testing.T) {
	court := &domain.Court{ID: 1, Name: "Court A", Type: domain.CourtTypeIndoor, BasePrice: 25}
	coach := &domain.Coach{ID: 2, Name: "Marcus Williams", HourlyRate: 35, Available: true}

	in := domain.QuoteInput{
		Court:           court,
		Date:            saturday,
		Hour:            19,
		Resources:       domain.ResourceSelection{Rackets: 1, Shoes: 2, Shuttlecocks: 1},
		Coach:           coach,
		Rules:           defaultRules(),
		EquipmentPrices: defaultEquipmentPrices(),
	}

	first := domain.CalculatePrice(in)
	second := domain.CalculatePrice(in)

	require.Equal(t, first, second)
}

func TestCalculatePrice_BasePriceInOutputIsUnmodified(t *testing.T) {
	court := &domain.Court{ID: 1, Name: "Court A", Type: domain.CourtTypeIndoor, BasePrice: 25}

	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court:           court,
		Date:            saturday,
		Hour:            19,
		Rules:           defaultRules(),
		EquipmentPrices: defaultEquipmentPrices(),
	})

	// BasePrice в ответе - исходная цена корта, а не промежуточный итог
	assert.Equal(t, court.BasePrice, breakdown.BasePrice)
	assert.NotEqual(t, breakdown.Total, breakdown.BasePrice)
}
