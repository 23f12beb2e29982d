package rules

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// RuleRepository интерфейс репозитория правил ценообразования
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	GetByID(ctx context.Context, id int64) (*domain.PricingRule, error)
	List(ctx context.Context) ([]*domain.PricingRule, error)
	Update(ctx context.Context, id int64, rule *domain.PricingRule) (*domain.PricingRule, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
