package rules

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/dbmetrics"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"rule_type",
	"blackout_date",
	"start_date",
	"end_date",
	"reason",
	"max_concurrent_bookings",
	"max_daily_bookings",
	"buffer_minutes",
	"priority",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository reads and writes availability rules. The engine reads rules
// fresh per request; there is no process-wide cache.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an availability-rules repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive returns all active rules of every type, ordered by id for
// deterministic downstream resolution.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// UpsertCapacityLimit updates the active capacity_limit rule in place, or
// inserts one when none is active.
func (r *Repository) UpsertCapacityLimit(ctx context.Context, maxConcurrent, maxDaily int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_rules").
		Set("max_concurrent_bookings", maxConcurrent).
		Set("max_daily_bookings", maxDaily).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"rule_type": domain.RuleCapacityLimit, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertCapacityLimit - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpsertCapacityLimit - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpsertCapacityLimit - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected > 0 {
		return nil
	}

	return r.insertRule(ctx, executor, map[string]interface{}{
		"rule_type":               domain.RuleCapacityLimit,
		"max_concurrent_bookings": maxConcurrent,
		"max_daily_bookings":      maxDaily,
	})
}

// UpsertBufferTime updates the active buffer_time rule in place, or inserts
// one when none is active.
func (r *Repository) UpsertBufferTime(ctx context.Context, bufferMinutes int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_rules").
		Set("buffer_minutes", bufferMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"rule_type": domain.RuleBufferTime, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertBufferTime - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpsertBufferTime - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpsertBufferTime - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected > 0 {
		return nil
	}

	return r.insertRule(ctx, executor, map[string]interface{}{
		"rule_type":      domain.RuleBufferTime,
		"buffer_minutes": bufferMinutes,
	})
}

func (r *Repository) insertRule(ctx context.Context, executor dbmetrics.DBExecutor, values map[string]interface{}) error {
	builder := psqlbuilder.Insert("availability_rules").SetMap(values)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertRule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertRule - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func scanRules(rows *sql.Rows) ([]*domain.AvailabilityRule, error) {
	rules := make([]*domain.AvailabilityRule, 0)

	for rows.Next() {
		var rule domain.AvailabilityRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.Type,
			&rule.Date,
			&rule.StartDate,
			&rule.EndDate,
			&rule.Reason,
			&rule.MaxConcurrentBookings,
			&rule.MaxDailyBookings,
			&rule.BufferMinutes,
			&rule.Priority,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}
	return rules, nil
}
