package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "pitchbook/database/repository/booking"
	groundRepo "pitchbook/database/repository/ground"
	userRepo "pitchbook/database/repository/user"
	"pitchbook/models"
	"pitchbook/utils"
)

// Create validates a booking request, guards it against conflicting bookings
// under a per-slot lock, and persists it with status pending.
func (s *DefaultBookingService) Create(ctx context.Context, input models.CreateBookingInput) (*models.BookingDetail, error) {
	logger := utils.GetLogger()

	norm, err := s.validateCreate(&input)
	if err != nil {
		return nil, err
	}

	ground, err := s.GroundRepo.GetByID(ctx, input.GroundID)
	if err != nil {
		if errors.Is(err, groundRepo.ErrGroundNotFound) {
			return nil, NewNotFoundError("ground not found")
		}
		return nil, fmt.Errorf("failed to resolve ground: %w", err)
	}
	if ground.SlotCount > 0 && input.GroundSlot > ground.SlotCount {
		return nil, NewValidationError(fmt.Sprintf("ground %s has only %d slots", ground.Name, ground.SlotCount))
	}

	customer, err := s.UserRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, NewNotFoundError("customer not found")
		}
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	if err := s.checkStartWindow(norm.startAt); err != nil {
		return nil, err
	}

	// Serialize conflicting creations for this slot so two requests cannot
	// both pass the availability check before either insert commits.
	if s.Locker != nil {
		key := utils.SlotLockKey(input.GroundID, input.GroundSlot, input.BookingDate)
		release, ok, err := s.Locker.Acquire(ctx, key, slotLockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to lock slot: %w", err)
		}
		if !ok {
			return nil, NewConflictError("slot is currently being booked by another request, please retry", nil, nil)
		}
		defer release()
	}

	overlapping, err := s.Repo.FindOverlapping(ctx, input.GroundID, input.GroundSlot, input.BookingDate, input.StartTime, input.EndTime, "")
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if len(overlapping) > 0 {
		result := s.buildAvailabilityResult(ctx, overlapping)
		suggestions := s.suggestAlternatives(ctx, ground, input.GroundSlot, input.BookingDate, norm.durationMinutes)
		return nil, NewConflictError("the requested time slot is already booked", result.Conflicts, suggestions)
	}

	booking := &models.Booking{
		ID:                  uuid.New().String(),
		GroundID:            input.GroundID,
		GroundSlot:          input.GroundSlot,
		CustomerID:          input.CustomerID,
		BookingDate:         input.BookingDate,
		StartTime:           input.StartTime,
		EndTime:             input.EndTime,
		Duration:            norm.durationMinutes,
		BookingType:         input.BookingType,
		Status:              models.BookingStatusPending,
		Amount:              input.Amount,
		Notes:               input.Notes,
		SpecialRequirements: input.SpecialRequirements,
		CreatedAt:           s.now(),
	}
	if booking.SpecialRequirements == nil {
		booking.SpecialRequirements = []string{}
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		if bookingRepo.IsDuplicateKey(err) {
			return nil, NewConflictError("the requested time slot was just booked", nil, nil)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("groundID", booking.GroundID),
		zap.Int("groundSlot", booking.GroundSlot),
		zap.String("date", booking.BookingDate),
		zap.String("start", booking.StartTime),
		zap.String("end", booking.EndTime))

	gs := ground.Summary()
	cs := customer.Summary()
	return &models.BookingDetail{Booking: *booking, Ground: &gs, Customer: &cs}, nil
}

// createNorm carries derived values from validation.
type createNorm struct {
	startAt         time.Time
	durationMinutes int
}

// validateCreate checks required fields and formats, normalizes times and
// defaults in place, and derives the start instant and duration.
func (s *DefaultBookingService) validateCreate(input *models.CreateBookingInput) (*createNorm, error) {
	switch {
	case input.CustomerID == "":
		return nil, NewValidationError("missing required field: customerId")
	case input.GroundID == "":
		return nil, NewValidationError("missing required field: groundId")
	case input.BookingDate == "":
		return nil, NewValidationError("missing required field: bookingDate")
	case input.StartTime == "":
		return nil, NewValidationError("missing required field: startTime")
	case input.EndTime == "":
		return nil, NewValidationError("missing required field: endTime")
	case input.Amount <= 0:
		return nil, NewValidationError("missing required field: amount")
	}

	if _, err := parseDate(input.BookingDate); err != nil {
		return nil, NewValidationError("invalid bookingDate, expected YYYY-MM-DD")
	}

	start, err := normalizeClock(input.StartTime)
	if err != nil {
		return nil, NewValidationError("invalid startTime, expected HH:MM")
	}
	end, err := normalizeClock(input.EndTime)
	if err != nil {
		return nil, NewValidationError("invalid endTime, expected HH:MM")
	}
	if start >= end {
		return nil, NewValidationError("startTime must be before endTime")
	}
	input.StartTime = start
	input.EndTime = end

	if input.GroundSlot <= 0 {
		input.GroundSlot = DefaultGroundSlot
	}
	if input.BookingType == "" {
		input.BookingType = models.BookingTypePractice
	}
	if !models.IsValidBookingType(input.BookingType) {
		return nil, NewValidationError(fmt.Sprintf("invalid bookingType %q", input.BookingType))
	}

	duration := input.Duration
	if duration <= 0 {
		duration = clockToMinutes(end) - clockToMinutes(start)
	}

	startAt, err := combineDateTime(input.BookingDate, start)
	if err != nil {
		return nil, NewValidationError("invalid booking date/time")
	}

	return &createNorm{startAt: startAt, durationMinutes: duration}, nil
}

// checkStartWindow enforces the two distinct temporal rules on creation:
// the start must be in the future, and at least MinLeadTime away.
func (s *DefaultBookingService) checkStartWindow(startAt time.Time) error {
	now := s.now()
	if !startAt.After(now) {
		return NewValidationError("booking start must be in the future")
	}
	if startAt.Sub(now) < MinLeadTime {
		return NewValidationError(fmt.Sprintf("booking start must be at least %d minutes from now", int(MinLeadTime.Minutes())))
	}
	return nil
}
