package booking

import (
	"context"
	"fmt"

	"pitchbook/models"
)

// CheckAvailability determines whether the requested time range on a
// ground/slot/date is free of non-cancelled bookings. It is read only and
// safe to call repeatedly; creation uses it again as a guard under the slot
// lock.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, groundID string, slot int, date, startTime, endTime string) (*models.AvailabilityResult, error) {
	if groundID == "" {
		return nil, NewValidationError("groundId is required")
	}
	if slot <= 0 {
		slot = DefaultGroundSlot
	}
	if _, err := parseDate(date); err != nil {
		return nil, NewValidationError("invalid bookingDate, expected YYYY-MM-DD")
	}
	start, err := normalizeClock(startTime)
	if err != nil {
		return nil, NewValidationError("invalid startTime, expected HH:MM")
	}
	end, err := normalizeClock(endTime)
	if err != nil {
		return nil, NewValidationError("invalid endTime, expected HH:MM")
	}
	if start >= end {
		return nil, NewValidationError("startTime must be before endTime")
	}

	overlapping, err := s.Repo.FindOverlapping(ctx, groundID, slot, date, start, end, "")
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	return s.buildAvailabilityResult(ctx, overlapping), nil
}

// buildAvailabilityResult converts overlapping bookings into conflict
// summaries, resolving customer names best effort.
func (s *DefaultBookingService) buildAvailabilityResult(ctx context.Context, overlapping []models.Booking) *models.AvailabilityResult {
	result := &models.AvailabilityResult{Available: len(overlapping) == 0}

	names := make(map[string]string)
	for _, b := range overlapping {
		name, seen := names[b.CustomerID]
		if !seen && s.UserRepo != nil {
			if u, err := s.UserRepo.GetByID(ctx, b.CustomerID); err == nil {
				name = u.Name
			}
			names[b.CustomerID] = name
		}
		result.Conflicts = append(result.Conflicts, models.ConflictSummary{
			BookingID:    b.ID,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			BookingType:  b.BookingType,
			CustomerName: name,
		})
	}
	return result
}
