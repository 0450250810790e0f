package user

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDuplicateUser is returned when the user already exists
	ErrDuplicateUser = errors.New("user.repository: user already exists")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("user.repository: failed to scan row")

	// ErrEncodeField is returned when a JSONB column cannot be encoded or decoded
	ErrEncodeField = errors.New("user.repository: failed to encode field")
)
