package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByUser     BookingStatus = "cancelled_by_user"
	StatusCancelledByFacility BookingStatus = "cancelled_by_facility"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a court booking in the system
type Booking struct {
	ID              int64
	Ref             string // Внешний идентификатор бронирования (uuid)
	UserID          int64
	CourtID         int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Выбранные ресурсы
	Resources ResourceSelection
	CoachID   *int64

	// Denormalized data for history
	CourtName  string
	CoachName  *string
	CoachRate  *float64
	MemberName *string
	Notes      *string

	// Зафиксированная разбивка цены на момент бронирования
	Breakdown PricingBreakdown

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByFacility &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByFacility
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	UserID          int64
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}

// CourtBookingsFilter фильтр для получения бронирований корта
type CourtBookingsFilter struct {
	CourtID         int64
	Date            *time.Time // Фильтр по дате (опционально)
	IncludeInactive bool
}
