package rules

import "errors"

var (
	// ErrRuleNotFound is returned when no rule matches the id
	ErrRuleNotFound = errors.New("rules.repository: rule not found")

	// ErrBuildQuery is returned when building the SQL fails
	ErrBuildQuery = errors.New("rules.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL fails
	ErrExecQuery = errors.New("rules.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("rules.repository: failed to scan row")
)
