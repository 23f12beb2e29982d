package coach

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

// Repository репозиторий каталога тренеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового тренера
func (r *Repository) Create(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coaches").
		Columns("name", "specialty", "hourly_rate", "rating", "available").
		Values(coach.Name, coach.Specialty, coach.HourlyRate, coach.Rating, coach.Available).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&coach.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return coach, nil
}

// GetByID получает тренера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialty", "hourly_rate", "rating", "available").
		From("coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var coach domain.Coach

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&coach.ID,
		&coach.Name,
		&coach.Specialty,
		&coach.HourlyRate,
		&coach.Rating,
		&coach.Available,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCoachNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan coach: %v", ErrScanRow, err)
	}

	return &coach, nil
}

// List получает всех тренеров в порядке каталога
func (r *Repository) List(ctx context.Context) ([]*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialty", "hourly_rate", "rating", "available").
		From("coaches").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coaches := make([]*domain.Coach, 0)

	for rows.Next() {
		var coach domain.Coach

		err := rows.Scan(
			&coach.ID,
			&coach.Name,
			&coach.Specialty,
			&coach.HourlyRate,
			&coach.Rating,
			&coach.Available,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		coaches = append(coaches, &coach)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return coaches, nil
}

// Update обновляет тренера
func (r *Repository) Update(ctx context.Context, id int64, coach *domain.Coach) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coaches").
		Set("name", coach.Name).
		Set("specialty", coach.Specialty).
		Set("hourly_rate", coach.HourlyRate).
		Set("rating", coach.Rating).
		Set("available", coach.Available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&coach.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCoachNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return coach, nil
}

// Delete удаляет тренера
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCoachNotFound
	}

	return nil
}
