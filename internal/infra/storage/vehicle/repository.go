package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/dbmetrics"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/psqlbuilder"
)

var vehicleColumns = []string{
	"id",
	"name",
	"vehicle_type",
	"capacity",
	"is_active",
	"is_operational",
	"created_at",
	"updated_at",
}

// Repository reads the fleet registry.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a vehicle repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListEligible returns active and operational vehicles ordered by capacity,
// the order the tightest-fit selector walks them in.
func (r *Repository) ListEligible(ctx context.Context) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"is_active": true, "is_operational": true}).
		OrderBy("capacity ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligible - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligible - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// GetByID fetches one vehicle, regardless of state.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.Name,
		&v.Type,
		&v.Capacity,
		&v.IsActive,
		&v.IsOperational,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	return &v, nil
}

func scanVehicles(rows *sql.Rows) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0)

	for rows.Next() {
		var v domain.Vehicle
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Type,
			&v.Capacity,
			&v.IsActive,
			&v.IsOperational,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVehicles - scan row: %v", ErrScanRow, err)
		}

		v.CreatedAt = createdAt.Time
		v.UpdatedAt = updatedAt.Time
		vehicles = append(vehicles, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVehicles - rows error: %v", ErrScanRow, err)
	}
	return vehicles, nil
}
