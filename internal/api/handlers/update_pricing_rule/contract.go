package update_pricing_rule

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules/models"
)

type RuleService interface {
	Update(ctx context.Context, id int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
