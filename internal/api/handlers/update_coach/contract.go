package update_coach

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches/models"
)

type CoachService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCoachRequest) (*models.CoachResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
