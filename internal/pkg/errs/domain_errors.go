package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrClassNotFound = errors.New("class not found")
	ErrSlotNotFound  = errors.New("schedule slot not found")

	// Reservation errors
	ErrSlotClassMismatch = errors.New("slot does not belong to class")
	ErrDateMismatch      = errors.New("date does not fall on slot weekday")
	ErrPastDate          = errors.New("date is in the past")
	ErrAlreadyBooked     = errors.New("already booked for this slot and date")
	ErrClassFull         = errors.New("class is full")

	// Cancellation errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotBookingOwner    = errors.New("booking belongs to another user")
	ErrCancelWindowClosed = errors.New("cancellation window has passed")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")

	// Intake errors
	ErrDuplicateSubscription = errors.New("email already subscribed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
