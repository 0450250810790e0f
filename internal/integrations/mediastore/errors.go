package mediastore

import "errors"

var (
	// ErrFileTooLarge is returned when the upload exceeds the size cap
	ErrFileTooLarge = errors.New("mediastore client: file exceeds upload limit")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("mediastore client: internal error")

	// ErrInvalidResponse is returned on a malformed media store response
	ErrInvalidResponse = errors.New("mediastore client: invalid response")

	// ErrServiceDegraded is returned when the media store is unreachable.
	// Callers keep the booking flow alive and skip the upload.
	ErrServiceDegraded = errors.New("mediastore unavailable: graceful degradation applied")
)
