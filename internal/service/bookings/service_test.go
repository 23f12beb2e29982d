package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *stubBookingRepo) GetByUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (s *stubBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	s.cancelledID = id
	s.cancelledStatus = status
	s.cancelledReason = reason
	return nil
}

type stubPublisher struct {
	keys     []string
	payloads []any
}

func (s *stubPublisher) PublishJSON(ctx context.Context, routingKey string, payload any) error {
	s.keys = append(s.keys, routingKey)
	s.payloads = append(s.payloads, payload)
	return nil
}

func testBooking(id, userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		Ref:             "b7f3d9a0-0000-0000-0000-000000000001",
		UserID:          userID,
		CourtID:         1,
		BookingDate:     time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		DurationMinutes: domain.SlotDurationMinutes,
		Status:          status,
		CourtName:       "Court A",
		Breakdown: domain.PricingBreakdown{
			BasePrice: 30,
			Total:     30,
		},
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		10: testBooking(10, 42, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nil, nopLogger{})

	result, err := svc.GetByID(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.ID)
	assert.Equal(t, "confirmed", result.Status)
	assert.Equal(t, "Court A", result.CourtName)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID_ForeignBooking(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		10: testBooking(10, 42, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetUserBookings_SkipsInactiveByDefault(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		10: testBooking(10, 42, domain.StatusConfirmed),
		11: testBooking(11, 42, domain.StatusCancelledByUser),
	}}
	svc := NewService(repo, nil, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})
	require.NoError(t, err)
	require.Len(t, result.Bookings, 1)
	assert.Equal(t, int64(10), result.Bookings[0].ID)

	result, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID:          42,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, result.Bookings, 2)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("postponed"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		10: testBooking(10, 42, domain.StatusConfirmed),
	}}
	publisher := &stubPublisher{}
	svc := NewService(repo, publisher, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: "rain check",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
	assert.Equal(t, "rain check", repo.cancelledReason)

	require.Len(t, publisher.keys, 1)
	assert.Equal(t, "booking.cancelled", publisher.keys[0])
}

func TestService_Cancel_ForeignBooking(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		10: testBooking(10, 42, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestService_Cancel_AlreadyCompleted(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		10: testBooking(10, 42, domain.StatusCompleted),
	}}
	svc := NewService(repo, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_WithoutPublisher(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		10: testBooking(10, 42, domain.StatusPending),
	}}
	svc := NewService(repo, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
}
