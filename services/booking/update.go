package booking

import (
	"context"
	"errors"
	"fmt"

	groundRepo "pitchbook/database/repository/ground"
	"pitchbook/models"
)

// Update applies a patch to a non-terminal booking and re-validates it
// against the creation constraints. When the patch moves the booking to a
// different ground, slot, date or time range, the temporal rules and the
// availability check are re-run, with the booking itself excluded from the
// conflict scan.
func (s *DefaultBookingService) Update(ctx context.Context, id string, patch models.UpdateBookingInput) (*models.BookingDetail, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalStatus(b.Status) {
		return nil, NewInvalidStateError(fmt.Sprintf("%s booking can no longer be edited", b.Status))
	}

	moved := false
	timesChanged := false

	if patch.GroundID != nil && *patch.GroundID != b.GroundID {
		b.GroundID = *patch.GroundID
		moved = true
	}
	if patch.GroundSlot != nil && *patch.GroundSlot != b.GroundSlot {
		b.GroundSlot = *patch.GroundSlot
		moved = true
	}
	if patch.BookingDate != nil && *patch.BookingDate != b.BookingDate {
		b.BookingDate = *patch.BookingDate
		moved = true
	}
	if patch.StartTime != nil {
		start, err := normalizeClock(*patch.StartTime)
		if err != nil {
			return nil, NewValidationError("invalid startTime, expected HH:MM")
		}
		if start != b.StartTime {
			b.StartTime = start
			moved = true
			timesChanged = true
		}
	}
	if patch.EndTime != nil {
		end, err := normalizeClock(*patch.EndTime)
		if err != nil {
			return nil, NewValidationError("invalid endTime, expected HH:MM")
		}
		if end != b.EndTime {
			b.EndTime = end
			moved = true
			timesChanged = true
		}
	}
	if patch.Duration != nil {
		b.Duration = *patch.Duration
	} else if timesChanged {
		b.Duration = clockToMinutes(b.EndTime) - clockToMinutes(b.StartTime)
	}
	if patch.BookingType != nil {
		b.BookingType = *patch.BookingType
	}
	if patch.Amount != nil {
		b.Amount = *patch.Amount
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if patch.SpecialRequirements != nil {
		b.SpecialRequirements = *patch.SpecialRequirements
	}
	if b.SpecialRequirements == nil {
		b.SpecialRequirements = []string{}
	}

	// Field-level re-validation, same rules as creation.
	if b.GroundSlot <= 0 {
		b.GroundSlot = DefaultGroundSlot
	}
	if _, err := parseDate(b.BookingDate); err != nil {
		return nil, NewValidationError("invalid bookingDate, expected YYYY-MM-DD")
	}
	if b.StartTime >= b.EndTime {
		return nil, NewValidationError("startTime must be before endTime")
	}
	if !models.IsValidBookingType(b.BookingType) {
		return nil, NewValidationError(fmt.Sprintf("invalid bookingType %q", b.BookingType))
	}
	if b.Amount <= 0 {
		return nil, NewValidationError("missing required field: amount")
	}

	if moved {
		startAt, err := combineDateTime(b.BookingDate, b.StartTime)
		if err != nil {
			return nil, NewValidationError("invalid booking date/time")
		}
		if err := s.checkStartWindow(startAt); err != nil {
			return nil, err
		}

		ground, err := s.GroundRepo.GetByID(ctx, b.GroundID)
		if err != nil {
			if errors.Is(err, groundRepo.ErrGroundNotFound) {
				return nil, NewNotFoundError("ground not found")
			}
			return nil, fmt.Errorf("failed to resolve ground: %w", err)
		}
		if ground.SlotCount > 0 && b.GroundSlot > ground.SlotCount {
			return nil, NewValidationError(fmt.Sprintf("ground %s has only %d slots", ground.Name, ground.SlotCount))
		}

		overlapping, err := s.Repo.FindOverlapping(ctx, b.GroundID, b.GroundSlot, b.BookingDate, b.StartTime, b.EndTime, b.ID)
		if err != nil {
			return nil, fmt.Errorf("availability check failed: %w", err)
		}
		if len(overlapping) > 0 {
			result := s.buildAvailabilityResult(ctx, overlapping)
			suggestions := s.suggestAlternatives(ctx, ground, b.GroundSlot, b.BookingDate, b.Duration)
			return nil, NewConflictError("the requested time slot is already booked", result.Conflicts, suggestions)
		}
	}

	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return s.detail(ctx, b), nil
}
