package get_time_slots

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// buildSlots строит часовую сетку слотов от первого до последнего часа дня
// Каждый слот получает признак занятости и цену превью
func buildSlots(
	court *domain.Court,
	date time.Time,
	bookings []*domain.Booking,
	rules []*domain.PricingRule,
	composition domain.CompositionMode,
) ([]Slot, error) {
	slots := make([]Slot, 0, domain.LastSlotHour-domain.FirstSlotHour+1)

	for hour := domain.FirstSlotHour; hour <= domain.LastSlotHour; hour++ {
		startTime := types.TimeString(fmt.Sprintf("%02d:00", hour))

		endTime, err := startTime.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}

		// Цена превью: тот же расчёт, что и для бронирования,
		// но без инвентаря и тренера
		breakdown := domain.CalculatePrice(domain.QuoteInput{
			Court:       court,
			Date:        date,
			Hour:        hour,
			Rules:       rules,
			Composition: composition,
		})

		slots = append(slots, Slot{
			StartTime: startTime.String(),
			EndTime:   endTime.String(),
			Available: !isSlotTaken(startTime, bookings),
			Price:     int(math.Round(breakdown.Total)),
		})
	}

	return slots, nil
}

// isSlotTaken проверяет, пересекается ли слот с активным бронированием
// Граничные случаи (бронирование заканчивается ровно в начале слота)
// пересечением не считаются
func isSlotTaken(slotStart types.TimeString, bookings []*domain.Booking) bool {
	slotEnd, err := slotStart.AddMinutes(domain.SlotDurationMinutes)
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
