package errs

import "errors"

// Domain-specific sentinel errors for the booking usecase layers
var (
	// Booking errors
	ErrDuplicateBooking   = errors.New("duplicate booking")
	ErrPersistenceFailure = errors.New("persistence failure")

	// Notification errors (non-fatal: logged, never surfaced as booking failures)
	ErrNotificationFailure = errors.New("notification failure")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
