package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/coach"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case для расчёта цены бронирования
type UseCase struct {
	courtRepo     CourtRepository
	coachRepo     CoachRepository
	ruleRepo      RuleRepository
	equipmentRepo EquipmentRepository
	composition   domain.CompositionMode
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	coachRepo CoachRepository,
	ruleRepo RuleRepository,
	equipmentRepo EquipmentRepository,
	composition domain.CompositionMode,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:     courtRepo,
		coachRepo:     coachRepo,
		ruleRepo:      ruleRepo,
		equipmentRepo: equipmentRepo,
		composition:   composition,
		logger:        logger,
	}
}

// Execute выполняет расчёт цены для указанного слота
// Расчёт не резервирует слот и не проверяет его занятость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: court=%d, date=%s, time=%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	hour, err := req.StartTime.Hour()
	if err != nil {
		uc.logger.Warn("CalculatePrice: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CalculatePrice: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Получаем тренера, если выбран
	var coach *domain.Coach
	if req.CoachID != nil {
		coach, err = uc.coachRepo.GetByID(ctx, *req.CoachID)
		if err != nil {
			if errors.Is(err, coachRepo.ErrCoachNotFound) {
				uc.logger.Warn("CalculatePrice: coach id=%d not found", *req.CoachID)
				return nil, ErrCoachNotFound
			}
			uc.logger.Error("CalculatePrice: failed to get coach id=%d: %v", *req.CoachID, err)
			return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}

		if !coach.Available {
			uc.logger.Warn("CalculatePrice: coach id=%d is not available", *req.CoachID)
			return nil, ErrCoachNotAvailable
		}
	}

	// 4. Снимок активных правил в порядке каталога
	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CalculatePrice: failed to list active rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list active rules: %v", ErrInternal, err)
	}

	// 5. Снимок цен инвентаря
	prices, err := uc.equipmentPrices(ctx, req.Resources)
	if err != nil {
		return nil, err
	}

	// 6. Вычисляем разбивку цены
	breakdown := domain.CalculatePrice(domain.QuoteInput{
		Court:           court,
		Date:            req.Date,
		Hour:            hour,
		Resources:       req.Resources,
		Coach:           coach,
		Rules:           rules,
		EquipmentPrices: prices,
		Composition:     uc.composition,
	})

	uc.logger.Info("CalculatePrice: court=%d, date=%s, time=%s, total=%.2f",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, breakdown.Total)

	return &Response{
		CourtID:   req.CourtID,
		Date:      req.Date.Format(domain.DateFormat),
		StartTime: req.StartTime.String(),
		Breakdown: breakdown,
	}, nil
}

// equipmentPrices собирает снимок цен инвентаря по типам
// Тип, отсутствующий в каталоге, не попадает в снимок и даёт нулевую
// стоимость аренды - запрошенный инвентарь при этом логируется
func (uc *UseCase) equipmentPrices(ctx context.Context, resources domain.ResourceSelection) (domain.EquipmentPrices, error) {
	items, err := uc.equipmentRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CalculatePrice: failed to list equipment: %v", err)
		return nil, fmt.Errorf("%w: failed to list equipment: %v", ErrInternal, err)
	}

	prices := make(domain.EquipmentPrices, len(items))
	for _, item := range items {
		prices[item.Type] = item.PricePerHour
	}

	for _, requested := range requestedTypes(resources) {
		if _, ok := prices[requested]; !ok {
			uc.logger.Warn("CalculatePrice: equipment type %q requested but missing from catalog, priced as zero", requested)
		}
	}

	return prices, nil
}

// requestedTypes возвращает типы инвентаря с ненулевым количеством в выборе
func requestedTypes(resources domain.ResourceSelection) []domain.EquipmentType {
	var types []domain.EquipmentType

	if resources.Rackets > 0 {
		types = append(types, domain.EquipmentTypeRacket)
	}
	if resources.Shoes > 0 {
		types = append(types, domain.EquipmentTypeShoes)
	}
	if resources.Shuttlecocks > 0 {
		types = append(types, domain.EquipmentTypeShuttlecock)
	}

	return types
}
