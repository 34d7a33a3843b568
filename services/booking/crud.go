package booking

import (
	"context"
	"fmt"

	"pitchbook/models"
)

// GetByID returns a single booking enriched with ground and customer
// summaries.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.BookingDetail, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, b), nil
}

// List returns one page of bookings matching the filter with pagination
// metadata.
func (s *DefaultBookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.BookingDetail, models.PaginationMeta, error) {
	if filter.Status != "" && !models.IsValidBookingStatus(filter.Status) {
		return nil, models.PaginationMeta{}, NewValidationError(fmt.Sprintf("invalid status %q", filter.Status))
	}
	if filter.Type != "" && !models.IsValidBookingType(filter.Type) {
		return nil, models.PaginationMeta{}, NewValidationError(fmt.Sprintf("invalid bookingType %q", filter.Type))
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	bookings, total, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, models.PaginationMeta{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for i := range bookings {
		details = append(details, *s.detail(ctx, &bookings[i]))
	}

	pages := 0
	if total > 0 {
		pages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}
	meta := models.PaginationMeta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
	}
	return details, meta, nil
}

// Delete removes a booking record. Administrative use only; customers cancel
// instead.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.getBooking(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// detail enriches a booking with resolved ground and customer summaries,
// best effort.
func (s *DefaultBookingService) detail(ctx context.Context, b *models.Booking) *models.BookingDetail {
	d := &models.BookingDetail{Booking: *b}
	if s.GroundRepo != nil {
		if g, err := s.GroundRepo.GetByID(ctx, b.GroundID); err == nil {
			gs := g.Summary()
			d.Ground = &gs
		}
	}
	if s.UserRepo != nil {
		if u, err := s.UserRepo.GetByID(ctx, b.CustomerID); err == nil {
			us := u.Summary()
			d.Customer = &us
		}
	}
	return d
}
