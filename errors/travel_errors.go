// errors/travel_errors.go
package errors

import "errors"

var (
	ErrTripNotFound          = errors.New("trip not found")
	ErrTripConflict          = errors.New("trip already exists")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingConflict       = errors.New("booking already exists")
	ErrBookingInProgress     = errors.New("another booking is in progress for this traveler")
	ErrDatabaseOperation     = errors.New("database operation failed")
	ErrInvalidTripData       = errors.New("invalid trip data")
	ErrInvalidBookingData    = errors.New("invalid booking data")
	ErrInvalidSearchCriteria = errors.New("invalid search criteria")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
	ErrInternalServer        = errors.New("internal server error")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrApprovalRequired      = errors.New("booking requires an approver")
)
