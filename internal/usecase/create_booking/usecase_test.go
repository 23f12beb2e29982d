package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/coach"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/memberservice"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Стабы зависимостей

type stubBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.nextID++
	booking.ID = s.nextID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	s.created = booking
	return booking, nil
}

func (s *stubBookingRepo) GetByCourtAndDate(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return s.existing, nil
}

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
	return s.rules, nil
}

type stubEquipmentRepo struct {
	items []*domain.Equipment
}

func (s *stubEquipmentRepo) List(_ context.Context) ([]*domain.Equipment, error) {
	return s.items, nil
}

type stubMemberClient struct {
	member *memberservice.Member
	err    error
}

func (s *stubMemberClient) GetMemberWithGracefulDegradation(_ context.Context, _ int64) (*memberservice.Member, error) {
	return s.member, s.err
}

type stubPublisher struct {
	keys []string
}

func (s *stubPublisher) PublishJSON(_ context.Context, routingKey string, _ any) error {
	s.keys = append(s.keys, routingKey)
	return nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

// Суббота
var saturday = time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC)

// Текущее время: пятница перед субботой
var friday = time.Date(2025, time.October, 17, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc        *UseCase
	bookings  *stubBookingRepo
	publisher *stubPublisher
}

func newFixture(existing []*domain.Booking) *fixture {
	bookings := &stubBookingRepo{existing: existing}
	publisher := &stubPublisher{}

	uc := NewUseCase(
		bookings,
		&stubCourtRepo{courts: map[int64]*domain.Court{
			1: {ID: 1, Name: "Court A", Type: domain.CourtTypeIndoor, BasePrice: 25},
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
			{ID: 1, Name: "Pro Racket", Type: domain.EquipmentTypeRacket, PricePerHour: 5, TotalStock: 10, AvailableStock: 2},
			{ID: 2, Name: "Court Shoes", Type: domain.EquipmentTypeShoes, PricePerHour: 3, TotalStock: 10, AvailableStock: 10},
			{ID: 3, Name: "Shuttlecock Tube", Type: domain.EquipmentTypeShuttlecock, PricePerHour: 8, TotalStock: 20, AvailableStock: 0},
		}},
		&stubMemberClient{member: &memberservice.Member{ID: 42, Name: "Sam Lee"}},
		publisher,
		stubTxManager{},
		domain.CompositionOverride,
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: friday}

	return &fixture{uc: uc, bookings: bookings, publisher: publisher}
}

func TestExecute_CreatesBookingWithBreakdown(t *testing.T) {
	f := newFixture(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("19:00"),
		Resources: domain.ResourceSelection{Rackets: 1},
		CoachID:   ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Ref)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Court A", resp.CourtName)
	require.NotNil(t, resp.CoachName)
	assert.Equal(t, "Alex Chen", *resp.CoachName)
	require.NotNil(t, resp.MemberName)
	assert.Equal(t, "Sam Lee", *resp.MemberName)

	// 25 + 12.5 + 10 + 5 + 5 + 60
	assert.Equal(t, 117.5, resp.Breakdown.Total)

	assert.Equal(t, []string{"booking.created"}, f.publisher.keys)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture([]*domain.Booking{
		{
			ID:              7,
			CourtID:         1,
			StartTime:       types.TimeString("19:00"),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	})

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("19:00"),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, f.publisher.keys)
}

func TestExecute_CancelledBookingDoesNotBlockSlot(t *testing.T) {
	f := newFixture([]*domain.Booking{
		{
			ID:              7,
			CourtID:         1,
			StartTime:       types.TimeString("19:00"),
			DurationMinutes: 60,
			Status:          domain.StatusCancelledByUser,
		},
	})

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("19:00"),
	})

	assert.NoError(t, err)
}

func TestExecute_InsufficientStock(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
		Resources: domain.ResourceSelection{Rackets: 3}, // доступно 2
	})

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestExecute_ZeroStockEquipment(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
		Resources: domain.ResourceSelection{Shuttlecocks: 1},
	})

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestExecute_CoachNotAvailable(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
		CoachID:   ptr.Ptr(int64(2)),
	})

	assert.ErrorIs(t, err, ErrCoachNotAvailable)
}

func TestExecute_DateInPast(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      friday.AddDate(0, 0, -1),
		StartTime: types.TimeString("10:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      friday.AddDate(0, 0, domain.MaxAdvanceBookingDays+1),
		StartTime: types.TimeString("10:00"),
	})

	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_SlotOutsideFacilityHours(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("05:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_MemberServiceDegradedStillBooks(t *testing.T) {
	f := newFixture(nil)
	f.uc.memberClient = &stubMemberClient{err: memberservice.ErrServiceDegraded}

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Date:      saturday,
		StartTime: types.TimeString("10:00"),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.MemberName)
}
