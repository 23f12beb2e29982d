package equipment

import (
	"context"
	"errors"
	"fmt"

	equipmentRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/equipment"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/equipment/models"
)

// Service сервис каталога инвентаря
// Ассортимент фиксированный (ракетки, обувь, воланы), поэтому
// создание и удаление позиций не поддерживаются
type Service struct {
	equipmentRepo EquipmentRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса инвентаря
func NewService(equipmentRepo EquipmentRepository, logger Logger) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// List получает каталог инвентаря
func (s *Service) List(ctx context.Context) (*models.EquipmentListResponse, error) {
	s.logger.Info("List: fetching equipment catalog")

	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d equipment items", len(items))
	return models.FromDomainEquipmentList(items), nil
}

// Update обновляет позицию инвентаря
// При изменении общего количества доступный остаток корректируется
// на ту же величину, но не опускается ниже нуля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("Update: updating equipment id=%d", id)

	item, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("Update: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("Update: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			s.logger.Warn("Update: empty name for equipment id=%d", id)
			return nil, fmt.Errorf("%w: equipment name cannot be empty", ErrInvalidInput)
		}
		item.Name = *req.Name
	}

	if req.PricePerHour != nil {
		if *req.PricePerHour < 0 {
			s.logger.Warn("Update: negative price for equipment id=%d", id)
			return nil, fmt.Errorf("%w: price per hour must be non-negative", ErrInvalidInput)
		}
		item.PricePerHour = *req.PricePerHour
	}

	if req.TotalStock != nil {
		if *req.TotalStock < 0 {
			s.logger.Warn("Update: negative stock for equipment id=%d", id)
			return nil, fmt.Errorf("%w: total stock must be non-negative", ErrInvalidInput)
		}

		delta := *req.TotalStock - item.TotalStock
		item.TotalStock = *req.TotalStock
		item.AvailableStock += delta
		if item.AvailableStock < 0 {
			item.AvailableStock = 0
		}
	}

	updated, err := s.equipmentRepo.Update(ctx, id, item)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("Update: equipment id=%d not found during update", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("Update: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated equipment id=%d", id)
	return models.FromDomainEquipment(updated), nil
}
