package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на расчёт цены
type Request struct {
	CourtID   int64                    // ID корта
	Date      time.Time                // Дата слота (используется день недели)
	StartTime types.TimeString         // Время начала слота (например, "19:00")
	Resources domain.ResourceSelection // Выбранный инвентарь
	CoachID   *int64                   // ID тренера (опционально)
}

// Response модель ответа с разбивкой цены
type Response struct {
	CourtID   int64                   // ID корта
	Date      string                  // Дата в формате YYYY-MM-DD
	StartTime string                  // Время начала слота
	Breakdown domain.PricingBreakdown // Разбивка цены
}
