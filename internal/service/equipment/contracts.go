package equipment

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// EquipmentRepository интерфейс репозитория инвентаря
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context) ([]*domain.Equipment, error)
	Update(ctx context.Context, id int64, item *domain.Equipment) (*domain.Equipment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
