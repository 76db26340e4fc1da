package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")

	// Item errors
	ErrItemNotFound = errors.New("item not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrItemUnavailable = errors.New("item not available")
	// Owner booking their own item surfaces as NotFound, matching the
	// long-standing external contract of the service.
	ErrBookerIsOwner        = errors.New("user is owner")
	ErrStatusAlreadyDecided = errors.New("booking status already decided")
	ErrUnknownState         = errors.New("unknown booking state filter")

	// Comment errors
	ErrCommentNotAllowed = errors.New("booking for comment not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
