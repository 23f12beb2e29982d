package calculate_price

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// CoachRepository интерфейс репозитория тренеров
type CoachRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Coach, error)
}

// RuleRepository интерфейс репозитория правил ценообразования
type RuleRepository interface {
	ListActive(ctx context.Context) ([]*domain.PricingRule, error)
}

// EquipmentRepository интерфейс репозитория инвентаря
type EquipmentRepository interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
