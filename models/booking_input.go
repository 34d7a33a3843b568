package models

// CreateBookingInput is the request body for creating a booking.
type CreateBookingInput struct {
	CustomerID          string   `json:"customerId"`
	GroundID            string   `json:"groundId"`
	GroundSlot          int      `json:"groundSlot"` // defaults to 1
	BookingDate         string   `json:"bookingDate"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	Duration            int      `json:"duration"` // minutes, derived from times if zero
	BookingType         string   `json:"bookingType"`
	Amount              float64  `json:"amount"`
	Notes               string   `json:"notes,omitempty"`
	SpecialRequirements []string `json:"specialRequirements,omitempty"`
}

// UpdateBookingInput is the patch body for editing a non-terminal booking.
// Nil fields are left unchanged.
type UpdateBookingInput struct {
	GroundID            *string   `json:"groundId,omitempty"`
	GroundSlot          *int      `json:"groundSlot,omitempty"`
	BookingDate         *string   `json:"bookingDate,omitempty"`
	StartTime           *string   `json:"startTime,omitempty"`
	EndTime             *string   `json:"endTime,omitempty"`
	Duration            *int      `json:"duration,omitempty"`
	BookingType         *string   `json:"bookingType,omitempty"`
	Amount              *float64  `json:"amount,omitempty"`
	Notes               *string   `json:"notes,omitempty"`
	SpecialRequirements *[]string `json:"specialRequirements,omitempty"`
}

// BookingFilter narrows booking list queries. Zero values are ignored.
type BookingFilter struct {
	Status     string
	Type       string
	CustomerID string
	GroundID   string
	FromDate   string // inclusive, "2006-01-02"
	ToDate     string // inclusive
	Page       int    // 1-based
	Limit      int
}
