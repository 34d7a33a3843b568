package models

// ConflictSummary describes one existing booking that overlaps a requested
// time range. CustomerName is resolved best effort for display.
type ConflictSummary struct {
	BookingID    string `json:"bookingId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BookingType  string `json:"bookingType"`
	CustomerName string `json:"customerName,omitempty"`
}

// AvailabilityResult is the outcome of an availability check.
type AvailabilityResult struct {
	Available bool              `json:"available"`
	Conflicts []ConflictSummary `json:"conflicts,omitempty"`
}

// AlternativeSlot is a suggested replacement for a conflicted request:
// a free gap the same day, another sub-slot, or the next day.
type AlternativeSlot struct {
	GroundID    string `json:"groundId"`
	GroundSlot  int    `json:"groundSlot"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// BookingDetail is a booking enriched with resolved ground and customer
// summaries for API responses.
type BookingDetail struct {
	Booking
	Ground   *GroundSummary `json:"ground,omitempty"`
	Customer *UserSummary   `json:"customer,omitempty"`
}

// PaginationMeta describes one page of a list response.
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
