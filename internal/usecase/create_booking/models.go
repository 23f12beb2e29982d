package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64                    // ID пользователя
	CourtID   int64                    // ID корта
	Date      time.Time                // Дата бронирования (без времени)
	StartTime types.TimeString         // Время начала слота (например, "19:00")
	Resources domain.ResourceSelection // Выбранный инвентарь
	CoachID   *int64                   // ID тренера (опционально)
	Notes     *string                  // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	Ref             string           // Внешний uuid бронирования
	UserID          int64            // ID пользователя
	CourtID         int64            // ID корта
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	Resources domain.ResourceSelection // Выбранный инвентарь
	CoachID   *int64                   // ID тренера

	// Денормализованные данные
	CourtName  string   // Название корта
	CoachName  *string  // Имя тренера
	CoachRate  *float64 // Ставка тренера на момент бронирования
	MemberName *string  // Имя участника клуба
	Notes      *string  // Заметки

	// Зафиксированная разбивка цены
	Breakdown domain.PricingBreakdown

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
