package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// Service сервис каталога кортов
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// List получает каталог кортов
func (s *Service) List(ctx context.Context) (*models.CourtListResponse, error) {
	s.logger.Info("List: fetching courts catalog")

	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	s.logger.Info("GetByID: fetching court id=%d", id)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}

// Create создает новый корт
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court name=%s, type=%s", req.Name, req.Type)

	court, err := toDomainCourt(req)
	if err != nil {
		s.logger.Warn("Create: invalid court data: %v", err)
		return nil, err
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created court id=%d", created.ID)
	return models.FromDomainCourt(created), nil
}

// Update обновляет корт
// Неуказанные поля остаются без изменений
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Update: updating court id=%d", id)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := applyCourtUpdate(court, req); err != nil {
		s.logger.Warn("Update: invalid court data for id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.courtRepo.Update(ctx, id, court)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found during update", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated court id=%d", id)
	return models.FromDomainCourt(updated), nil
}

// Delete удаляет корт
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting court id=%d", id)

	if err := s.courtRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Delete: court id=%d not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Delete: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted court id=%d", id)
	return nil
}

// Валидация и конвертация

func toDomainCourt(req *models.CreateCourtRequest) (*domain.Court, error) {
	courtType, err := parseCourtType(req.Type)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: court name is required", ErrInvalidInput)
	}

	if req.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base price must be non-negative", ErrInvalidInput)
	}

	return &domain.Court{
		Name:      req.Name,
		Type:      courtType,
		BasePrice: req.BasePrice,
		Amenities: req.Amenities,
	}, nil
}

func applyCourtUpdate(court *domain.Court, req *models.UpdateCourtRequest) error {
	if req.Name != nil {
		if *req.Name == "" {
			return fmt.Errorf("%w: court name cannot be empty", ErrInvalidInput)
		}
		court.Name = *req.Name
	}

	if req.Type != nil {
		courtType, err := parseCourtType(*req.Type)
		if err != nil {
			return err
		}
		court.Type = courtType
	}

	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return fmt.Errorf("%w: base price must be non-negative", ErrInvalidInput)
		}
		court.BasePrice = *req.BasePrice
	}

	if req.Amenities != nil {
		court.Amenities = *req.Amenities
	}

	return nil
}

func parseCourtType(value string) (domain.CourtType, error) {
	switch domain.CourtType(value) {
	case domain.CourtTypeIndoor, domain.CourtTypeOutdoor:
		return domain.CourtType(value), nil
	default:
		return "", fmt.Errorf("%w: unknown court type %q", ErrInvalidInput, value)
	}
}
