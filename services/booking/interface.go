package booking

import (
	"context"
	"time"

	bookingRepo "pitchbook/database/repository/booking"
	groundRepo "pitchbook/database/repository/ground"
	paymentRepo "pitchbook/database/repository/payment"
	userRepo "pitchbook/database/repository/user"
	"pitchbook/models"
	"pitchbook/services/notification"
)

// Business-rule windows.
const (
	// MinLeadTime is the minimum gap between "now" and a new booking's start.
	MinLeadTime = time.Hour
	// CancelCutoff is the minimum gap between "now" and a confirmed booking's
	// start below which cancellation is refused.
	CancelCutoff = 2 * time.Hour

	// DefaultGroundSlot is used when a request does not name a sub-slot.
	DefaultGroundSlot = 1

	slotLockTTL = 10 * time.Second
)

// BookingService defines the interface for the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, input models.CreateBookingInput) (*models.BookingDetail, error)
	GetByID(ctx context.Context, id string) (*models.BookingDetail, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.BookingDetail, models.PaginationMeta, error)
	Update(ctx context.Context, id string, patch models.UpdateBookingInput) (*models.BookingDetail, error)
	Confirm(ctx context.Context, id, paymentID string) (*models.BookingDetail, error)
	Cancel(ctx context.Context, id, reason string) (*models.BookingDetail, error)
	Complete(ctx context.Context, id string) (*models.BookingDetail, error)
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, groundID string, slot int, date, startTime, endTime string) (*models.AvailabilityResult, error)
}

// SlotLocker serializes conflicting booking writes for one ground/slot/date.
// Acquire returns a release func and whether the lock was obtained.
type SlotLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error)
}

// ReminderScheduler enqueues a reminder to fire before a booking starts.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking *models.Booking) error
}

// DefaultBookingService implements BookingService. Locker, Notifier and
// Reminders are optional; nil values disable the corresponding behavior.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	GroundRepo  groundRepo.GroundRepository
	UserRepo    userRepo.UserRepository
	PaymentRepo paymentRepo.PaymentRepository

	Locker    SlotLocker
	Notifier  notification.NotificationService
	Reminders ReminderScheduler

	// Now is the clock, overridable in tests.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
