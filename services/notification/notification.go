package notification

import (
	"context"
	"fmt"

	userRepo "pitchbook/database/repository/user"
	"pitchbook/models"
	"pitchbook/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending booking-related FCM pushes.
type NotificationService interface {
	SendBookingConfirmed(ctx context.Context, booking *models.Booking) error
	SendBookingCancelled(ctx context.Context, booking *models.Booking, reason string) error
	SendBookingReminder(ctx context.Context, booking *models.Booking) error
}

// DefaultNotificationService is the production implementation. When no FCM
// client is configured, sends are logged and skipped.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func (s *DefaultNotificationService) SendBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	title := "Booking confirmed"
	body := fmt.Sprintf("Your booking on %s from %s to %s is confirmed.", booking.BookingDate, booking.StartTime, booking.EndTime)
	return s.push(ctx, booking, title, body, "booking_confirmed")
}

func (s *DefaultNotificationService) SendBookingCancelled(ctx context.Context, booking *models.Booking, reason string) error {
	title := "Booking cancelled"
	body := fmt.Sprintf("Your booking on %s from %s to %s was cancelled.", booking.BookingDate, booking.StartTime, booking.EndTime)
	if reason != "" {
		body += " Reason: " + reason
	}
	return s.push(ctx, booking, title, body, "booking_cancelled")
}

func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, booking *models.Booking) error {
	title := "Upcoming booking"
	body := fmt.Sprintf("Your booking starts at %s on %s.", booking.StartTime, booking.BookingDate)
	return s.push(ctx, booking, title, body, "booking_reminder")
}

// push looks up the customer's FCM token and sends a data message.
func (s *DefaultNotificationService) push(ctx context.Context, booking *models.Booking, title, body, event string) error {
	logger := utils.GetLogger()

	if utils.FCMClient == nil {
		logger.Debug("push notifications disabled, skipping send",
			zap.String("bookingID", booking.ID), zap.String("event", event))
		return nil
	}

	u, err := s.Users.GetByID(ctx, booking.CustomerID)
	if err != nil {
		return fmt.Errorf("could not resolve customer %s: %w", booking.CustomerID, err)
	}
	if u.FCMToken == "" {
		logger.Debug("customer has no FCM token, skipping push",
			zap.String("customerID", u.ID), zap.String("event", event))
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"event":     event,
			"bookingId": booking.ID,
			"groundId":  booking.GroundID,
			"date":      booking.BookingDate,
			"startTime": booking.StartTime,
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push for booking %s: %w", booking.ID, err)
	}
	return nil
}
