package get_time_slots

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCourtAndDate(ctx context.Context, filter domain.CourtBookingsFilter) ([]*domain.Booking, error)
}

// RuleRepository интерфейс репозитория правил ценообразования
type RuleRepository interface {
	ListActive(ctx context.Context) ([]*domain.PricingRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
