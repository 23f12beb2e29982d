package coaches

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CoachRepository интерфейс репозитория тренеров
type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)
	GetByID(ctx context.Context, id int64) (*domain.Coach, error)
	List(ctx context.Context) ([]*domain.Coach, error)
	Update(ctx context.Context, id int64, coach *domain.Coach) (*domain.Coach, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
