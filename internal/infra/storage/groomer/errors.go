package groomer

import "errors"

var (
	// ErrGroomerNotFound is returned when the groomer does not exist
	ErrGroomerNotFound = errors.New("groomer.repository: groomer not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("groomer.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("groomer.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("groomer.repository: failed to scan row")
)
