package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"ref",
	"user_id",
	"court_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"status",
	"rackets",
	"shoes",
	"shuttlecocks",
	"coach_id",
	"court_name",
	"coach_name",
	"coach_rate",
	"member_name",
	"notes",
	"base_price",
	"peak_hour_fee",
	"weekend_fee",
	"premium_court_fee",
	"equipment_fee",
	"coach_fee",
	"total_price",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.Ref,
		&b.UserID,
		&b.CourtID,
		&b.BookingDate,
		&b.StartTime,
		&b.DurationMinutes,
		&b.Status,
		&b.Resources.Rackets,
		&b.Resources.Shoes,
		&b.Resources.Shuttlecocks,
		&b.CoachID,
		&b.CourtName,
		&b.CoachName,
		&b.CoachRate,
		&b.MemberName,
		&b.Notes,
		&b.Breakdown.BasePrice,
		&b.Breakdown.PeakHourFee,
		&b.Breakdown.WeekendFee,
		&b.Breakdown.PremiumCourtFee,
		&b.Breakdown.EquipmentFee,
		&b.Breakdown.CoachFee,
		&b.Breakdown.Total,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"ref",
			"user_id",
			"court_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"rackets",
			"shoes",
			"shuttlecocks",
			"coach_id",
			"court_name",
			"coach_name",
			"coach_rate",
			"member_name",
			"notes",
			"base_price",
			"peak_hour_fee",
			"weekend_fee",
			"premium_court_fee",
			"equipment_fee",
			"coach_fee",
			"total_price",
		).
		Values(
			booking.Ref,
			booking.UserID,
			booking.CourtID,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.Status,
			booking.Resources.Rackets,
			booking.Resources.Shoes,
			booking.Resources.Shuttlecocks,
			booking.CoachID,
			booking.CourtName,
			booking.CoachName,
			booking.CoachRate,
			booking.MemberName,
			booking.Notes,
			booking.Breakdown.BasePrice,
			booking.Breakdown.PeakHourFee,
			booking.Breakdown.WeekendFee,
			booking.Breakdown.PremiumCourtFee,
			booking.Breakdown.EquipmentFee,
			booking.Breakdown.CoachFee,
			booking.Breakdown.Total,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUser получает бронирования пользователя с фильтрацией
func (r *Repository) GetByUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("booking_date DESC, start_time DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if !filter.IncludeInactive {
		builder = builder.Where(squirrel.NotEq{"status": domain.InactiveStatuses})
	}

	return r.query(ctx, builder, "GetByUser")
}

// GetByCourtAndDate получает бронирования корта на дату
// Используется для расчёта занятости слотов
func (r *Repository) GetByCourtAndDate(ctx context.Context, filter domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"court_id": filter.CourtID}).
		OrderBy("start_time ASC")

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if !filter.IncludeInactive {
		builder = builder.Where(squirrel.NotEq{"status": domain.InactiveStatuses})
	}

	return r.query(ctx, builder, "GetByCourtAndDate")
}

func (r *Repository) query(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
