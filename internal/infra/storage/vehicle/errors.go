package vehicle

import "errors"

var (
	// ErrVehicleNotFound is returned when no vehicle matches the id
	ErrVehicleNotFound = errors.New("vehicle.repository: vehicle not found")

	// ErrBuildQuery is returned when building the SQL fails
	ErrBuildQuery = errors.New("vehicle.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL fails
	ErrExecQuery = errors.New("vehicle.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("vehicle.repository: failed to scan row")
)
