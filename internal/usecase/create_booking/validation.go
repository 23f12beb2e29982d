package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	if req.Resources.HasNegativeCounts() {
		return ErrInvalidResourceCount
	}

	if req.CoachID != nil && *req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// truncateToDay отбрасывает время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := truncateToDay(bookingDate)
	nowOnly := truncateToDay(now)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	maxDate := nowOnly.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}

	return nil
}

// validateSlotHour проверяет, что час начала попадает в сетку слотов клуба
func validateSlotHour(hour int) error {
	if hour < domain.FirstSlotHour || hour > domain.LastSlotHour {
		return fmt.Errorf("%w: slot must start between %02d:00 and %02d:00",
			ErrInvalidTimeSlot, domain.FirstSlotHour, domain.LastSlotHour)
	}
	return nil
}

// hasOverlap проверяет, пересекается ли слот с активным бронированием
// Граничные случаи (бронирование заканчивается ровно в начале слота)
// пересечением не считаются
func hasOverlap(slotStart types.TimeString, slotDuration int, bookings []*domain.Booking) bool {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return false
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			return true
		}
	}

	return false
}

// checkStockAndCollectPrices проверяет наличие запрошенного инвентаря
// и возвращает снимок цен по типам
func checkStockAndCollectPrices(resources domain.ResourceSelection, items []*domain.Equipment) (domain.EquipmentPrices, error) {
	prices := make(domain.EquipmentPrices, len(items))
	stock := make(map[domain.EquipmentType]*domain.Equipment, len(items))

	for _, item := range items {
		prices[item.Type] = item.PricePerHour
		stock[item.Type] = item
	}

	requested := map[domain.EquipmentType]int{
		domain.EquipmentTypeRacket:      resources.Rackets,
		domain.EquipmentTypeShoes:       resources.Shoes,
		domain.EquipmentTypeShuttlecock: resources.Shuttlecocks,
	}

	for equipmentType, count := range requested {
		if count == 0 {
			continue
		}

		item, ok := stock[equipmentType]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not in the catalog", ErrInsufficientStock, equipmentType)
		}

		if !item.HasStock(count) {
			return nil, fmt.Errorf("%w: requested %d of %s, %d available",
				ErrInsufficientStock, count, equipmentType, item.AvailableStock)
		}
	}

	return prices, nil
}
