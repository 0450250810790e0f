package customers

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotCustomer is returned when the warning engine is pointed at a staff account
	ErrNotCustomer = errors.New("user is not a customer")

	// ErrNotBanned is returned when lifting a ban from an account that is not banned
	ErrNotBanned = errors.New("user is not banned")

	// ErrInternal is returned for unexpected repository failures
	ErrInternal = errors.New("internal error")
)
