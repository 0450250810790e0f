package block_day

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("block_day: invalid input data")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("block_day: internal error")
)
