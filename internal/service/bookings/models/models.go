package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID          int64   `json:"userId"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// Response модели

// ResourcesResponse выбранный инвентарь в бронировании
type ResourcesResponse struct {
	Rackets      int `json:"rackets"`
	Shoes        int `json:"shoes"`
	Shuttlecocks int `json:"shuttlecocks"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	Ref             string `json:"ref"`
	UserID          int64  `json:"userId"`
	CourtID         int64  `json:"courtId"`
	BookingDate     string `json:"bookingDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`   // "19:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	Resources ResourcesResponse `json:"resources"`
	CoachID   *int64            `json:"coachId,omitempty"`

	// Денормализованные данные
	CourtName  string   `json:"courtName"`
	CoachName  *string  `json:"coachName,omitempty"`
	CoachRate  *float64 `json:"coachRate,omitempty"`
	MemberName *string  `json:"memberName,omitempty"`
	Notes      *string  `json:"notes,omitempty"`

	// Зафиксированная разбивка цены
	Breakdown domain.PricingBreakdown `json:"breakdown"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		Ref:             b.Ref,
		UserID:          b.UserID,
		CourtID:         b.CourtID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		Resources: ResourcesResponse{
			Rackets:      b.Resources.Rackets,
			Shoes:        b.Resources.Shoes,
			Shuttlecocks: b.Resources.Shuttlecocks,
		},
		CoachID:            b.CoachID,
		CourtName:          b.CourtName,
		CoachName:          b.CoachName,
		CoachRate:          b.CoachRate,
		MemberName:         b.MemberName,
		Notes:              b.Notes,
		Breakdown:          b.Breakdown,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result.Bookings = append(result.Bookings, *resp)
		}
	}

	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByFacility,
		domain.StatusNoShow:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
