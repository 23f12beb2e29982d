package coaches

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/coach"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/coaches/models"
)

// Service сервис каталога тренеров
type Service struct {
	coachRepo CoachRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса тренеров
func NewService(coachRepo CoachRepository, logger Logger) *Service {
	return &Service{
		coachRepo: coachRepo,
		logger:    logger,
	}
}

// List получает каталог тренеров
func (s *Service) List(ctx context.Context) (*models.CoachListResponse, error) {
	s.logger.Info("List: fetching coaches catalog")

	coaches, err := s.coachRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d coaches", len(coaches))
	return models.FromDomainCoachList(coaches), nil
}

// Create добавляет нового тренера
func (s *Service) Create(ctx context.Context, req *models.CreateCoachRequest) (*models.CoachResponse, error) {
	s.logger.Info("Create: creating coach name=%s", req.Name)

	coach := &domain.Coach{
		Name:       req.Name,
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
		Rating:     req.Rating,
		Available:  req.Available,
	}

	if err := validateCoach(coach); err != nil {
		s.logger.Warn("Create: invalid coach data: %v", err)
		return nil, err
	}

	created, err := s.coachRepo.Create(ctx, coach)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created coach id=%d", created.ID)
	return models.FromDomainCoach(created), nil
}

// Update обновляет тренера
// Неуказанные поля остаются без изменений
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCoachRequest) (*models.CoachResponse, error) {
	s.logger.Info("Update: updating coach id=%d", id)

	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, coachRepo.ErrCoachNotFound) {
			s.logger.Warn("Update: coach id=%d not found", id)
			return nil, ErrCoachNotFound
		}
		s.logger.Error("Update: repository error for coach id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		coach.Name = *req.Name
	}
	if req.Specialty != nil {
		coach.Specialty = *req.Specialty
	}
	if req.HourlyRate != nil {
		coach.HourlyRate = *req.HourlyRate
	}
	if req.Rating != nil {
		coach.Rating = *req.Rating
	}
	if req.Available != nil {
		coach.Available = *req.Available
	}

	if err := validateCoach(coach); err != nil {
		s.logger.Warn("Update: invalid coach data for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.coachRepo.Update(ctx, id, coach)
	if err != nil {
		if errors.Is(err, coachRepo.ErrCoachNotFound) {
			s.logger.Warn("Update: coach id=%d not found during update", id)
			return nil, ErrCoachNotFound
		}
		s.logger.Error("Update: repository error for coach id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated coach id=%d", id)
	return models.FromDomainCoach(updated), nil
}

// Delete удаляет тренера
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting coach id=%d", id)

	if err := s.coachRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, coachRepo.ErrCoachNotFound) {
			s.logger.Warn("Delete: coach id=%d not found", id)
			return ErrCoachNotFound
		}
		s.logger.Error("Delete: repository error for coach id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted coach id=%d", id)
	return nil
}

func validateCoach(coach *domain.Coach) error {
	if coach.Name == "" {
		return fmt.Errorf("%w: coach name is required", ErrInvalidInput)
	}

	if coach.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly rate must be non-negative", ErrInvalidInput)
	}

	if coach.Rating < 0 || coach.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}

	return nil
}
