package get_time_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case для получения дневной сетки слотов корта
type UseCase struct {
	courtRepo   CourtRepository
	bookingRepo BookingRepository
	ruleRepo    RuleRepository
	composition domain.CompositionMode
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	ruleRepo RuleRepository,
	composition domain.CompositionMode,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		ruleRepo:    ruleRepo,
		composition: composition,
		logger:      logger,
	}
}

// Execute строит часовую сетку слотов корта на указанную дату
// Цена каждого слота - превью без инвентаря и тренера, округлённое до целого
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetTimeSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetTimeSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Активные бронирования корта на дату
	bookings, err := uc.bookingRepo.GetByCourtAndDate(ctx, domain.CourtBookingsFilter{
		CourtID: req.CourtID,
		Date:    &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get bookings for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Снимок активных правил
	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to list active rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list active rules: %v", ErrInternal, err)
	}

	// 5. Строим сетку
	slots, err := buildSlots(court, req.Date, bookings, rules, uc.composition)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to build slots for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetTimeSlots: built %d slots for court=%d, date=%s",
		len(slots), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date.Format(domain.DateFormat),
		Slots:   slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
