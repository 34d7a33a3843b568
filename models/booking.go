package models

import "time"

// Booking status values. A booking starts out pending, moves to confirmed
// once payment is verified, and ends up completed or cancelled. Cancellation
// is allowed from any non-terminal state.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking type values.
const (
	BookingTypePractice = "practice"
	BookingTypeMatch    = "match"
	BookingTypeTraining = "training"
	BookingTypeSession  = "session"
)

// Booking represents a reservation of one slot of a ground for a time range
// on a single calendar day.
type Booking struct {
	ID                  string    `bson:"id" json:"id"`
	GroundID            string    `bson:"ground_id" json:"groundId"`
	GroundSlot          int       `bson:"ground_slot" json:"groundSlot"` // 1-based sub-slot, defaults to 1
	CustomerID          string    `bson:"customer_id" json:"customerId"`
	BookingDate         string    `bson:"booking_date" json:"bookingDate"` // "2006-01-02"
	StartTime           string    `bson:"start_time" json:"startTime"`     // "15:04", zero padded
	EndTime             string    `bson:"end_time" json:"endTime"`         // exclusive bound, same day
	Duration            int       `bson:"duration" json:"duration"`        // minutes
	BookingType         string    `bson:"booking_type" json:"bookingType"`
	Status              string    `bson:"status" json:"status"`
	Amount              float64   `bson:"amount" json:"amount"`
	PaymentID           string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Notes               string    `bson:"notes,omitempty" json:"notes,omitempty"`
	SpecialRequirements []string  `bson:"special_requirements" json:"specialRequirements"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
}

// IsTerminalStatus reports whether a booking in the given status can no
// longer change state.
func IsTerminalStatus(status string) bool {
	return status == BookingStatusCompleted || status == BookingStatusCancelled
}

// IsValidBookingType reports whether t is one of the supported booking types.
func IsValidBookingType(t string) bool {
	switch t {
	case BookingTypePractice, BookingTypeMatch, BookingTypeTraining, BookingTypeSession:
		return true
	}
	return false
}

// IsValidBookingStatus reports whether s is one of the booking statuses.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
