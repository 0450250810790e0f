package groomers

import "errors"

var (
	// ErrGroomerNotFound is returned when the groomer does not exist
	ErrGroomerNotFound = errors.New("groomer not found")

	// ErrRosterFull is returned when no roster entry is left to link a staff account to
	ErrRosterFull = errors.New("no unlinked roster entry available")

	// ErrInternal is returned for unexpected repository failures
	ErrInternal = errors.New("internal error")
)
