package create_booking

import "errors"

var (
	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrCustomerBanned is returned when a banned customer tries to book
	ErrCustomerBanned = errors.New("create_booking: customer is banned")

	// ErrPackageNotFound is returned when the requested package does not exist
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrDayBlackedOut is returned when the requested date is closed
	ErrDayBlackedOut = errors.New("create_booking: day is blacked out")

	// ErrGroomerNotAvailable is returned when the requested groomer cannot take the slot
	ErrGroomerNotAvailable = errors.New("create_booking: groomer is not available for this slot")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("create_booking: internal error")
)
