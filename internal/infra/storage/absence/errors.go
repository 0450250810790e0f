package absence

import "errors"

var (
	// ErrAbsenceNotFound is returned when the absence request does not exist
	ErrAbsenceNotFound = errors.New("absence.repository: absence not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("absence.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("absence.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("absence.repository: failed to scan row")
)
