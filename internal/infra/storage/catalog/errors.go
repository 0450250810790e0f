package catalog

import "errors"

var (
	// ErrPackageNotFound is returned when the package does not exist
	ErrPackageNotFound = errors.New("catalog.repository: package not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("catalog.repository: failed to scan row")

	// ErrEncodeField is returned when a JSONB column cannot be encoded or decoded
	ErrEncodeField = errors.New("catalog.repository: failed to encode field")
)
