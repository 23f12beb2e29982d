package get_time_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type stubCourtRepo struct {
	courts map[int64]*domain.Court
}

func (s *stubCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	court, ok := s.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	return court, nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetByCourtAndDate(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type stubRuleRepo struct {
	rules []*domain.PricingRule
}

func (s *stubRuleRepo) ListActive(_ context.Context) ([]*domain.PricingRule, error) {
	return s.rules, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Среда
var wednesday = time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)

func newTestUseCase(bookings []*domain.Booking) *UseCase {
	return NewUseCase(
		&stubCourtRepo{courts: map[int64]*domain.Court{
			1: {ID: 1, Name: "Court A", Type: domain.CourtTypeIndoor, BasePrice: 25},
		}},
		&stubBookingRepo{bookings: bookings},
		&stubRuleRepo{rules: []*domain.PricingRule{
			{ID: 1, Name: "Peak Hours", Active: true, Params: domain.TimeRuleParams{StartHour: 18, EndHour: 21, Multiplier: 1.5}},
			{ID: 2, Name: "Premium Court Fee", Active: true, Params: domain.PremiumRuleParams{Surcharge: 5}},
		}},
		domain.CompositionOverride,
		nopLogger{},
	)
}

func TestExecute_GridCoversFacilityDay(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: wednesday})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, "06:00", resp.Slots[0].StartTime)
	assert.Equal(t, "07:00", resp.Slots[0].EndTime)
	assert.Equal(t, "21:00", resp.Slots[15].StartTime)
	assert.Equal(t, "22:00", resp.Slots[15].EndTime)
}

func TestExecute_PreviewPriceFollowsRules(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: wednesday})

	require.NoError(t, err)

	// Внепиковый час: 25 базовая + 5 premium = 30
	assert.Equal(t, 30, resp.Slots[4].Price) // 10:00

	// Пиковый час: 25 + 12.5 + 5 = 42.5, округление до 43
	assert.Equal(t, 43, resp.Slots[13].Price) // 19:00
}

func TestExecute_BookedSlotUnavailable(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		{
			ID:              1,
			CourtID:         1,
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
		{
			ID:              2,
			CourtID:         1,
			StartTime:       types.TimeString("12:00"),
			DurationMinutes: 60,
			Status:          domain.StatusCancelledByUser,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: wednesday})

	require.NoError(t, err)

	assert.False(t, resp.Slots[4].Available) // 10:00 занят
	assert.True(t, resp.Slots[5].Available)  // 11:00 свободен
	assert.True(t, resp.Slots[6].Available)  // 12:00 свободен - бронирование отменено
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{CourtID: 99, Date: wednesday})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{CourtID: 0, Date: wednesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
