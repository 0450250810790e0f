package blackout

import "errors"

var (
	// ErrBlackoutNotFound is returned when the date has no blackout
	ErrBlackoutNotFound = errors.New("blackout.repository: blackout not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("blackout.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("blackout.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("blackout.repository: failed to scan row")
)
