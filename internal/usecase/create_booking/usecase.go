package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/events"
	coachRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/coach"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	memberClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/memberservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	courtRepo     CourtRepository
	coachRepo     CoachRepository
	ruleRepo      RuleRepository
	equipmentRepo EquipmentRepository
	memberClient  MemberServiceClient
	publisher     EventPublisher
	txManager     TransactionManager
	timeProvider  TimeProvider
	composition   domain.CompositionMode
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// publisher может быть nil, если шина событий выключена
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	coachRepo CoachRepository,
	ruleRepo RuleRepository,
	equipmentRepo EquipmentRepository,
	memberClient MemberServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	composition domain.CompositionMode,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		courtRepo:     courtRepo,
		coachRepo:     coachRepo,
		ruleRepo:      ruleRepo,
		equipmentRepo: equipmentRepo,
		memberClient:  memberClient,
		publisher:     publisher,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		composition:   composition,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Занятость слота, наличие инвентаря и фиксация цены проверяются
// в сериализуемой транзакции для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, date=%s, time=%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты относительно текущего времени
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	hour, err := req.StartTime.Hour()
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	if err := validateSlotHour(hour); err != nil {
		uc.logger.Warn("CreateBooking: slot hour validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Получаем тренера, если выбран
	var coach *domain.Coach
	if req.CoachID != nil {
		coach, err = uc.coachRepo.GetByID(ctx, *req.CoachID)
		if err != nil {
			if errors.Is(err, coachRepo.ErrCoachNotFound) {
				uc.logger.Warn("CreateBooking: coach id=%d not found", *req.CoachID)
				return nil, ErrCoachNotFound
			}
			uc.logger.Error("CreateBooking: failed to get coach id=%d: %v", *req.CoachID, err)
			return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}

		if !coach.Available {
			uc.logger.Warn("CreateBooking: coach id=%d is not available", *req.CoachID)
			return nil, ErrCoachNotAvailable
		}
	}

	// 5. Получаем профиль участника с graceful degradation
	// Недоступность MemberService не блокирует бронирование
	var memberName *string
	member, err := uc.memberClient.GetMemberWithGracefulDegradation(ctx, req.UserID)
	if err == nil {
		memberName = &member.Name
	} else if !errors.Is(err, memberClient.ErrMemberNotFound) && !errors.Is(err, memberClient.ErrServiceDegraded) {
		uc.logger.Error("CreateBooking: failed to get member profile for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get member profile: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования корта на дату
		bookings, err := uc.bookingRepo.GetByCourtAndDate(txCtx, domain.CourtBookingsFilter{
			CourtID: req.CourtID,
			Date:    &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем занятость слота
		if hasOverlap(req.StartTime, domain.SlotDurationMinutes, bookings) {
			uc.logger.Warn("CreateBooking: slot %s already taken for court id=%d", req.StartTime, req.CourtID)
			return ErrSlotNotAvailable
		}

		// 6.3. Проверяем наличие запрошенного инвентаря и снимаем цены
		items, err := uc.equipmentRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list equipment: %v", err)
			return fmt.Errorf("%w: failed to list equipment: %v", ErrInternal, err)
		}

		prices, err := checkStockAndCollectPrices(req.Resources, items)
		if err != nil {
			uc.logger.Warn("CreateBooking: stock check failed: %v", err)
			return err
		}

		// 6.4. Снимок активных правил и фиксация цены
		rules, err := uc.ruleRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list active rules: %v", err)
			return fmt.Errorf("%w: failed to list active rules: %v", ErrInternal, err)
		}

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

		// 6.5. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			Ref:             uuid.NewString(),
			UserID:          req.UserID,
			CourtID:         req.CourtID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: domain.SlotDurationMinutes,
			Status:          domain.StatusConfirmed,
			Resources:       req.Resources,
			CoachID:         req.CoachID,
			CourtName:       court.Name,
			MemberName:      memberName,
			Notes:           req.Notes,
			Breakdown:       breakdown,
		}

		if coach != nil {
			booking.CoachName = &coach.Name
			booking.CoachRate = &coach.HourlyRate
		}

		// 6.6. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, ref=%s, total=%.2f",
		result.ID, result.Ref, result.Breakdown.Total)

	// 7. Публикуем событие создания
	uc.publishCreated(ctx, result)

	return &Response{
		ID:              result.ID,
		Ref:             result.Ref,
		UserID:          result.UserID,
		CourtID:         result.CourtID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Resources:       result.Resources,
		CoachID:         result.CoachID,
		CourtName:       result.CourtName,
		CoachName:       result.CoachName,
		CoachRate:       result.CoachRate,
		MemberName:      result.MemberName,
		Notes:           result.Notes,
		Breakdown:       result.Breakdown,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// publishCreated публикует событие создания
// Ошибка публикации не откатывает бронирование, только логируется
func (uc *UseCase) publishCreated(ctx context.Context, booking *domain.Booking) {
	if uc.publisher == nil {
		return
	}

	event := events.NewBookingCreated(booking)
	if err := uc.publisher.PublishJSON(ctx, events.RoutingKeyBookingCreated, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}
}
