package list_coaches

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches/models"
)

type CoachService interface {
	List(ctx context.Context) (*models.CoachListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
