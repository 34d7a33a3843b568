package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	bookingRepo "pitchbook/database/repository/booking"
	paymentRepo "pitchbook/database/repository/payment"
	"pitchbook/models"
	"pitchbook/utils"
)

// Confirm transitions a pending booking to confirmed, optionally attaching a
// verified payment. Re-confirming an already confirmed booking is an
// idempotent no-op.
func (s *DefaultBookingService) Confirm(ctx context.Context, id, paymentID string) (*models.BookingDetail, error) {
	logger := utils.GetLogger()

	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	switch b.Status {
	case models.BookingStatusConfirmed:
		return s.detail(ctx, b), nil
	case models.BookingStatusCancelled:
		return nil, NewInvalidStateError("cancelled booking cannot be confirmed")
	case models.BookingStatusCompleted:
		return nil, NewInvalidStateError("completed booking cannot be confirmed")
	}

	if paymentID != "" {
		payment, err := s.PaymentRepo.GetByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				return nil, NewNotFoundError("payment not found")
			}
			return nil, fmt.Errorf("failed to resolve payment: %w", err)
		}
		if payment.Status != models.PaymentStatusSuccess {
			return nil, NewInvalidStateError(fmt.Sprintf("payment has status %q, expected %q", payment.Status, models.PaymentStatusSuccess))
		}
		b.PaymentID = paymentID
	}

	b.Status = models.BookingStatusConfirmed
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	logger.Info("booking confirmed", zap.String("bookingID", b.ID), zap.String("paymentID", paymentID))

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmed(ctx, b); err != nil {
			logger.Warn("failed to send confirmation push", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, b); err != nil {
			logger.Warn("failed to schedule booking reminder", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	return s.detail(ctx, b), nil
}

// Cancel transitions a non-terminal booking to cancelled. Confirmed bookings
// cannot be cancelled within CancelCutoff of their start; pending bookings
// have no cutoff since nothing has been guaranteed to the customer yet.
func (s *DefaultBookingService) Cancel(ctx context.Context, id, reason string) (*models.BookingDetail, error) {
	logger := utils.GetLogger()

	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	switch b.Status {
	case models.BookingStatusCancelled:
		return nil, NewInvalidStateError("booking is already cancelled")
	case models.BookingStatusCompleted:
		return nil, NewInvalidStateError("completed booking cannot be cancelled")
	}

	if b.Status == models.BookingStatusConfirmed {
		startAt, err := combineDateTime(b.BookingDate, b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s has invalid date/time: %w", b.ID, err)
		}
		if startAt.Sub(s.now()) < CancelCutoff {
			return nil, NewInvalidStateError("too close to start time to cancel")
		}
	}

	b.Status = models.BookingStatusCancelled
	if reason != "" {
		// Never overwrite earlier notes.
		if b.Notes != "" {
			b.Notes += " | "
		}
		b.Notes += "cancelled: " + reason
	}

	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	logger.Info("booking cancelled", zap.String("bookingID", b.ID), zap.String("reason", reason))

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingCancelled(ctx, b, reason); err != nil {
			logger.Warn("failed to send cancellation push", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	return s.detail(ctx, b), nil
}

// Complete marks a confirmed booking as completed. Exposed on the admin
// surface only.
func (s *DefaultBookingService) Complete(ctx context.Context, id string) (*models.BookingDetail, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status != models.BookingStatusConfirmed {
		return nil, NewInvalidStateError(fmt.Sprintf("only confirmed bookings can be completed, booking is %q", b.Status))
	}

	b.Status = models.BookingStatusCompleted
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to complete booking: %w", err)
	}
	return s.detail(ctx, b), nil
}

// getBooking loads a booking, translating the repository miss into the
// domain NotFound error.
func (s *DefaultBookingService) getBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, NewNotFoundError("booking not found")
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return b, nil
}
