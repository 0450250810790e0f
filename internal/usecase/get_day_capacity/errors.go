package get_day_capacity

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_day_capacity: invalid input data")

	// ErrRangeTooWide is returned when the requested range exceeds the limit
	ErrRangeTooWide = errors.New("get_day_capacity: date range is too wide")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("get_day_capacity: internal error")
)
