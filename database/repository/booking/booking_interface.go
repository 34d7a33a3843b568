package bookingRepo

import (
	"context"

	"pitchbook/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error

	// List returns one page of bookings matching the filter plus the total
	// match count.
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int64, error)

	// FindOverlapping returns all non-cancelled bookings for the same ground,
	// slot and date whose half-open [start, end) interval intersects the given
	// range. excludeID, when non-empty, leaves that booking out of the result
	// so a booking being edited does not conflict with itself.
	FindOverlapping(ctx context.Context, groundID string, slot int, date, startTime, endTime, excludeID string) ([]models.Booking, error)
}
