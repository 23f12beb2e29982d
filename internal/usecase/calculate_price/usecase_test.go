package calculate_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/coach"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Стабы репозиториев

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

type stubCoachRepo struct {
	coaches map[int64]*domain.Coach
}

func (s *stubCoachRepo) GetByID(_ context.Context, id int64) (*domain.Coach, error) {
	coach, ok := s.coaches[id]
	if !ok {
		return nil, coachRepo.ErrCoachNotFound
	}
	return coach, nil
}

type stubRuleRepo struct {
	rules []*domain.PricingRule
}

func (s *stubRuleRepo) ListActive(_ context.Context) ([]*domain.PricingRule, error) {
	active := make([]*domain.PricingRule, 0, len(s.rules))
	for _, r := range s.rules {
		if r.Active {
			active = append(active, r)
		}
	}
	return active, nil
}

type stubEquipmentRepo struct {
	items []*domain.Equipment
}

func (s *stubEquipmentRepo) List(_ context.Context) ([]*domain.Equipment, error) {
	return s.items, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

var saturday = time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC)

func newTestUseCase() *UseCase {
	return NewUseCase(
		&stubCourtRepo{courts: map[int64]*domain.Court{
			1: {ID: 1, Name: "Court A", Type: domain.CourtTypeIndoor, BasePrice: 25},
			2: {ID: 2, Name: "Court D", Type: domain.CourtTypeOutdoor, BasePrice: 15},
		}},
		&stubCoachRepo{coaches: map[int64]*domain.Coach{
			1: {ID: 1, Name: "Alex Chen", HourlyRate: 60, Available: true},
			2: {ID: 2, Name: "Maria Santos", HourlyRate: 55, Available: false},
		}},
		&stubRuleRepo{rules: []*domain.PricingRule{
			{ID: 1, Name: "Peak Hours", Active: true, Params: domain.TimeRuleParams{StartHour: 18, EndHour: 21, Multiplier: 1.5}},
			{ID: 2, Name: "Weekend Surcharge", Active: true, Params: domain.DayRuleParams{Days: []int{0, 6}, Surcharge: 10}},
			{ID: 3, Name: "Premium Court Fee", Active: true, Params: domain.PremiumRuleParams{Surcharge: 5}},
		}},
		&stubEquipmentRepo{items: []*domain.Equipment{
			{ID: 1, Name: "Pro Racket", Type: domain.EquipmentTypeRacket, PricePerHour: 5},
			{ID: 2, Name: "Court Shoes", Type: domain.EquipmentTypeShoes, PricePerHour: 3},
			{ID: 3, Name: "Shuttlecock Tube", Type: domain.EquipmentTypeShuttlecock, PricePerHour: 8},
		}},
		domain.CompositionOverride,
		nopLogger{},
	)
}

func TestExecute_FullBreakdown(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("19:00"),
		Resources: domain.ResourceSelection{Rackets: 1},
		CoachID:   ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.Equal(t, 25.0, resp.Breakdown.BasePrice)
	assert.Equal(t, 12.5, resp.Breakdown.PeakHourFee)
	assert.Equal(t, 10.0, resp.Breakdown.WeekendFee)
	assert.Equal(t, 5.0, resp.Breakdown.PremiumCourtFee)
	assert.Equal(t, 5.0, resp.Breakdown.EquipmentFee)
	assert.Equal(t, 60.0, resp.Breakdown.CoachFee)
	assert.Equal(t, 117.5, resp.Breakdown.Total)
	assert.Equal(t, "2025-10-18", resp.Date)
	assert.Equal(t, "19:00", resp.StartTime)
}

func TestExecute_OutdoorCourtNoPremiumFee(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:   2,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Breakdown.PremiumCourtFee)
	assert.Equal(t, 0.0, resp.Breakdown.PeakHourFee)
	assert.Equal(t, 10.0, resp.Breakdown.WeekendFee)
	assert.Equal(t, 25.0, resp.Breakdown.Total)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		CourtID:   99,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
	})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_CoachNotFound(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
		CoachID:   ptr.Ptr(int64(99)),
	})

	assert.ErrorIs(t, err, ErrCoachNotFound)
}

func TestExecute_CoachNotAvailable(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
		CoachID:   ptr.Ptr(int64(2)),
	})

	assert.ErrorIs(t, err, ErrCoachNotAvailable)
}

func TestExecute_InvalidTimeFormat(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("25:99"),
	})

	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestExecute_NegativeResourceCount(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
		Resources: domain.ResourceSelection{Rackets: -1},
	})

	assert.ErrorIs(t, err, ErrInvalidResourceCount)
}

func TestExecute_MissingEquipmentTypePricedAsZero(t *testing.T) {
	uc := newTestUseCase()
	// Каталог без воланов
	uc.equipmentRepo = &stubEquipmentRepo{items: []*domain.Equipment{
		{ID: 1, Name: "Pro Racket", Type: domain.EquipmentTypeRacket, PricePerHour: 5},
	}}

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:   2,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
		Resources: domain.ResourceSelection{Shuttlecocks: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Breakdown.EquipmentFee)
}
