package domain

import "time"

// CompositionMode режим композиции одноимённых правил при вычислении цены
type CompositionMode string

const (
	// CompositionOverride при нескольких активных правилах одной категории,
	// подходящих под слот, применяется последнее по порядку каталога
	CompositionOverride CompositionMode = "override"

	// CompositionAccumulate эффекты всех подходящих правил одной категории суммируются
	CompositionAccumulate CompositionMode = "accumulate"
)

// IsValid returns true if the composition mode is one of the known values
func (m CompositionMode) IsValid() bool {
	return m == CompositionOverride || m == CompositionAccumulate
}

// ResourceSelection выбранное оборудование для бронирования
type ResourceSelection struct {
	Rackets      int
	Shoes        int
	Shuttlecocks int
}

// IsEmpty returns true if no equipment is selected
func (s ResourceSelection) IsEmpty() bool {
	return s.Rackets == 0 && s.Shoes == 0 && s.Shuttlecocks == 0
}

// HasNegativeCounts returns true if any count is negative
func (s ResourceSelection) HasNegativeCounts() bool {
	return s.Rackets < 0 || s.Shoes < 0 || s.Shuttlecocks < 0
}

// PricingBreakdown структурная декомпозиция итоговой цены бронирования
// PeakHourFee может быть отрицательным (скидка); Total не опускается ниже нуля
type PricingBreakdown struct {
	BasePrice       float64 `json:"basePrice"`
	PeakHourFee     float64 `json:"peakHourFee"`
	WeekendFee      float64 `json:"weekendFee"`
	PremiumCourtFee float64 `json:"premiumCourtFee"`
	EquipmentFee    float64 `json:"equipmentFee"`
	CoachFee        float64 `json:"coachFee"`
	Total           float64 `json:"total"`
}

// QuoteInput снимок входных данных для одного вычисления цены
// Все поля read-only: вычисление ничего не мутирует
type QuoteInput struct {
	Court           *Court
	Date            time.Time // Используется только день недели
	Hour            int       // Час начала слота, 0-23 (валидируется вызывающим)
	Resources       ResourceSelection
	Coach           *Coach // nil = без тренера
	Rules           []*PricingRule
	EquipmentPrices EquipmentPrices
	Composition     CompositionMode // Пустое значение трактуется как override
}

// CalculatePrice вычисляет разбивку цены бронирования
// Чистая функция: одинаковые входные данные всегда дают одинаковый результат
//
// Правила применяются в порядке каталога. В режиме override эффект каждого
// подходящего правила перезаписывает эффект предыдущего правила той же
// категории - выигрывает последнее по порядку каталога. В режиме accumulate
// эффекты суммируются
func CalculatePrice(in QuoteInput) PricingBreakdown {
	hour := in.Hour
	weekday := int(in.Date.Weekday()) // 0=воскресенье .. 6=суббота

	basePrice := in.Court.BasePrice
	accumulate := in.Composition == CompositionAccumulate

	var peakHourFee, weekendFee, premiumCourtFee float64

	for _, rule := range in.Rules {
		if !rule.Active {
			continue
		}

		switch params := rule.Params.(type) {
		case TimeRuleParams:
			if params.MatchesHour(hour) {
				effect := basePrice * (params.Multiplier - 1)
				if accumulate {
					peakHourFee += effect
				} else {
					peakHourFee = effect
				}
			}

		case DayRuleParams:
			if params.MatchesDay(weekday) {
				if accumulate {
					weekendFee += params.Surcharge
				} else {
					weekendFee = params.Surcharge
				}
			}

		case PremiumRuleParams:
			if in.Court.IsPremium() {
				if accumulate {
					premiumCourtFee += params.Surcharge
				} else {
					premiumCourtFee = params.Surcharge
				}
			}
		}
	}

	var equipmentFee float64
	equipmentFee += float64(in.Resources.Rackets) * in.EquipmentPrices[EquipmentTypeRacket]
	equipmentFee += float64(in.Resources.Shoes) * in.EquipmentPrices[EquipmentTypeShoes]
	equipmentFee += float64(in.Resources.Shuttlecocks) * in.EquipmentPrices[EquipmentTypeShuttlecock]

	var coachFee float64
	if in.Coach != nil {
		coachFee = in.Coach.HourlyRate
	}

	total := basePrice + peakHourFee + weekendFee + premiumCourtFee + equipmentFee + coachFee
	if total < 0 {
		total = 0
	}

	return PricingBreakdown{
		BasePrice:       basePrice,
		PeakHourFee:     peakHourFee,
		WeekendFee:      weekendFee,
		PremiumCourtFee: premiumCourtFee,
		EquipmentFee:    equipmentFee,
		CoachFee:        coachFee,
		Total:           total,
	}
}
