package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pitchbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBookingNotFound is returned when an id does not resolve to a booking.
var ErrBookingNotFound = errors.New("booking not found")

// FindOverlapping returns all non-cancelled bookings for the same ground,
// slot and date whose time range intersects [startTime, endTime). The bounds
// are half open: a booking ending exactly at startTime does not overlap.
// Times are zero-padded "15:04" strings, so lexicographic comparison matches
// chronological order.
func (r *MongoBookingRepo) FindOverlapping(ctx context.Context, groundID string, slot int, date, startTime, endTime, excludeID string) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"ground_id":    groundID,
		"ground_slot":  slot,
		"booking_date": date,
		"status":       bson.M{"$ne": models.BookingStatusCancelled},
		"start_time":   bson.M{"$lt": endTime},
		"end_time":     bson.M{"$gt": startTime},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding overlapping bookings: %w", err)
	}
	return bookings, nil
}

// List returns one page of bookings matching the filter plus the total count.
func (r *MongoBookingRepo) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Type != "" {
		filter["booking_type"] = f.Type
	}
	if f.CustomerID != "" {
		filter["customer_id"] = f.CustomerID
	}
	if f.GroundID != "" {
		filter["ground_id"] = f.GroundID
	}
	if f.FromDate != "" || f.ToDate != "" {
		dateRange := bson.M{}
		if f.FromDate != "" {
			dateRange["$gte"] = f.FromDate
		}
		if f.ToDate != "" {
			dateRange["$lte"] = f.ToDate
		}
		filter["booking_date"] = dateRange
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "booking_date", Value: -1}, {Key: "start_time", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, total, nil
}
