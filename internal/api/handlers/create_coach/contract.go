package create_coach

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches/models"
)

type CoachService interface {
	Create(ctx context.Context, req *models.CreateCoachRequest) (*models.CoachResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
