package pricing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/dbmetrics"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/psqlbuilder"
)

// Repository reads pricing rules.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a pricing-rules repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive returns every active pricing rule ordered by id. The rule sets
// are small; resolution by key happens in the engine so its precedence is
// testable without a database.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"vehicle_type",
		"duration_hours",
		"is_weekend",
		"base_price",
		"weekend_multiplier",
		"priority",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("pricing_rules").
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

	rules := make([]*domain.PricingRule, 0)
	for rows.Next() {
		var rule domain.PricingRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.VehicleType,
			&rule.DurationHours,
			&rule.IsWeekend,
			&rule.BasePrice,
			&rule.WeekendMultiplier,
			&rule.Priority,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}
	return rules, nil
}
