package errs

import "errors"

// Sentinels shared by the transport layer for coarse status mapping.
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
