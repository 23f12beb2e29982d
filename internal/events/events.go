package events

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Ключи маршрутизации событий бронирований
const (
	RoutingKeyBookingCreated   = "booking.created"
	RoutingKeyBookingCancelled = "booking.cancelled"
)

// BookingCreated событие создания бронирования
type BookingCreated struct {
	BookingID   int64     `json:"booking_id"`
	Ref         string    `json:"ref"`
	UserID      int64     `json:"user_id"`
	CourtID     int64     `json:"court_id"`
	BookingDate string    `json:"booking_date"`
	StartTime   string    `json:"start_time"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingCancelled событие отмены бронирования
type BookingCancelled struct {
	BookingID   int64                `json:"booking_id"`
	Ref         string               `json:"ref"`
	UserID      int64                `json:"user_id"`
	Status      domain.BookingStatus `json:"status"`
	Reason      string               `json:"reason"`
	CancelledAt time.Time            `json:"cancelled_at"`
}

// NewBookingCreated собирает событие из бронирования
func NewBookingCreated(b *domain.Booking) BookingCreated {
	return BookingCreated{
		BookingID:   b.ID,
		Ref:         b.Ref,
		UserID:      b.UserID,
		CourtID:     b.CourtID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		TotalPrice:  b.Breakdown.Total,
		CreatedAt:   b.CreatedAt,
	}
}

// NewBookingCancelled собирает событие из отменённого бронирования
func NewBookingCancelled(b *domain.Booking, reason string, cancelledAt time.Time) BookingCancelled {
	return BookingCancelled{
		BookingID:   b.ID,
		Ref:         b.Ref,
		UserID:      b.UserID,
		Status:      b.Status,
		Reason:      reason,
		CancelledAt: cancelledAt,
	}
}
