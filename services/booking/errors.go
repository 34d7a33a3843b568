package booking

import (
	"errors"
	"fmt"

	"pitchbook/models"
)

// Error kinds, machine-distinguishable by callers and the HTTP layer.
const (
	KindValidation   = "validation_error"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindInvalidState = "invalid_state"
)

// BookingError is the domain error type for booking operations. Conflict
// errors additionally carry the overlapping bookings and suggested
// alternatives so callers get structured data, not just a refusal.
type BookingError struct {
	Kind        string
	Message     string
	Conflicts   []models.ConflictSummary
	Suggestions []models.AlternativeSlot
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Kind: KindNotFound, Message: msg}
}

func NewInvalidStateError(msg string) error {
	return &BookingError{Kind: KindInvalidState, Message: msg}
}

func NewConflictError(msg string, conflicts []models.ConflictSummary, suggestions []models.AlternativeSlot) error {
	return &BookingError{
		Kind:        KindConflict,
		Message:     msg,
		Conflicts:   conflicts,
		Suggestions: suggestions,
	}
}

// AsBookingError unwraps err into a *BookingError if possible.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsKind reports whether err is a BookingError of the given kind.
func IsKind(err error, kind string) bool {
	be, ok := AsBookingError(err)
	return ok && be.Kind == kind
}
