package rule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога правил ценообразования
// Параметры правила хранятся в nullable колонках; при чтении строка
// разворачивается в типизированный payload соответствующей категории
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ruleRow плоское представление строки таблицы pricing_rules
type ruleRow struct {
	ID         int64
	Name       string
	RuleType   string
	Active     bool
	StartHour  sql.NullInt64
	EndHour    sql.NullInt64
	Multiplier sql.NullFloat64
	Days       pq.Int64Array
	Surcharge  sql.NullFloat64
}

// toDomain разворачивает плоскую строку в доменное правило с типизированным payload
func (row *ruleRow) toDomain() (*domain.PricingRule, error) {
	rule := &domain.PricingRule{
		ID:     row.ID,
		Name:   row.Name,
		Active: row.Active,
	}

	switch domain.RuleType(row.RuleType) {
	case domain.RuleTypeTime:
		if !row.StartHour.Valid || !row.EndHour.Valid || !row.Multiplier.Valid {
			return nil, fmt.Errorf("%w: time rule id=%d missing hour bounds or multiplier", ErrInvalidRuleRow, row.ID)
		}
		rule.Params = domain.TimeRuleParams{
			StartHour:  int(row.StartHour.Int64),
			EndHour:    int(row.EndHour.Int64),
			Multiplier: row.Multiplier.Float64,
		}

	case domain.RuleTypeDay:
		if len(row.Days) == 0 || !row.Surcharge.Valid {
			return nil, fmt.Errorf("%w: day rule id=%d missing days or surcharge", ErrInvalidRuleRow, row.ID)
		}
		days := make([]int, len(row.Days))
		for i, d := range row.Days {
			days[i] = int(d)
		}
		rule.Params = domain.DayRuleParams{
			Days:      days,
			Surcharge: row.Surcharge.Float64,
		}

	case domain.RuleTypePremium:
		if !row.Surcharge.Valid {
			return nil, fmt.Errorf("%w: premium rule id=%d missing surcharge", ErrInvalidRuleRow, row.ID)
		}
		rule.Params = domain.PremiumRuleParams{
			Surcharge: row.Surcharge.Float64,
		}

	default:
		return nil, fmt.Errorf("%w: unknown rule type %q for id=%d", ErrInvalidRuleRow, row.RuleType, row.ID)
	}

	return rule, nil
}

// flatten раскладывает типизированный payload правила по nullable колонкам
func flatten(rule *domain.PricingRule) (ruleType string, startHour, endHour interface{}, multiplier interface{}, days interface{}, surcharge interface{}) {
	switch params := rule.Params.(type) {
	case domain.TimeRuleParams:
		return string(domain.RuleTypeTime), params.StartHour, params.EndHour, params.Multiplier, nil, nil
	case domain.DayRuleParams:
		arr := make(pq.Int64Array, len(params.Days))
		for i, d := range params.Days {
			arr[i] = int64(d)
		}
		return string(domain.RuleTypeDay), nil, nil, nil, arr, params.Surcharge
	case domain.PremiumRuleParams:
		return string(domain.RuleTypePremium), nil, nil, nil, nil, params.Surcharge
	default:
		return "", nil, nil, nil, nil, nil
	}
}

// Create создает новое правило ценообразования
func (r *Repository) Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ruleType, startHour, endHour, multiplier, days, surcharge := flatten(rule)

	query, args, err := psqlbuilder.Insert("pricing_rules").
		Columns("name", "rule_type", "active", "start_hour", "end_hour", "multiplier", "days", "surcharge").
		Values(rule.Name, ruleType, rule.Active, startHour, endHour, multiplier, days, surcharge).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "rule_type", "active", "start_hour", "end_hour", "multiplier", "days", "surcharge",
	).
		From("pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var row ruleRow

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&row.ID,
		&row.Name,
		&row.RuleType,
		&row.Active,
		&row.StartHour,
		&row.EndHour,
		&row.Multiplier,
		&row.Days,
		&row.Surcharge,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return row.toDomain()
}

// List получает все правила в порядке каталога (порядок создания)
// Порядок важен: при override композиции выигрывает последнее подходящее правило
func (r *Repository) List(ctx context.Context) ([]*domain.PricingRule, error) {
	return r.list(ctx, nil)
}

// ListActive получает только активные правила в порядке каталога
func (r *Repository) ListActive(ctx context.Context) ([]*domain.PricingRule, error) {
	return r.list(ctx, squirrel.Eq{"active": true})
}

func (r *Repository) list(ctx context.Context, where interface{}) ([]*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id", "name", "rule_type", "active", "start_hour", "end_hour", "multiplier", "days", "surcharge",
	).
		From("pricing_rules").
		OrderBy("id ASC")

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PricingRule, 0)

	for rows.Next() {
		var row ruleRow

		err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.RuleType,
			&row.Active,
			&row.StartHour,
			&row.EndHour,
			&row.Multiplier,
			&row.Days,
			&row.Surcharge,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}

		rule, err := row.toDomain()
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Update обновляет правило
func (r *Repository) Update(ctx context.Context, id int64, rule *domain.PricingRule) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ruleType, startHour, endHour, multiplier, days, surcharge := flatten(rule)

	query, args, err := psqlbuilder.Update("pricing_rules").
		Set("name", rule.Name).
		Set("rule_type", ruleType).
		Set("active", rule.Active).
		Set("start_hour", startHour).
		Set("end_hour", endHour).
		Set("multiplier", multiplier).
		Set("days", days).
		Set("surcharge", surcharge).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// Delete удаляет правило
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_rules").
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
		return ErrRuleNotFound
	}

	return nil
}
