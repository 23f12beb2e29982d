package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/memberservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByCourtAndDate(ctx context.Context, filter domain.CourtBookingsFilter) ([]*domain.Booking, error)
}

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

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMemberWithGracefulDegradation(ctx context.Context, userID int64) (*memberservice.Member, error)
}

// EventPublisher интерфейс публикации событий бронирований
// При выключенной шине событий передаётся nil
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload any) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
