package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"pitchbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes on the bookings collection.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Active statuses participate in the uniqueness guard; cancelled bookings
	// free up their slot.
	activeStatuses := bson.A{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCompleted,
	}

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary conflict-query pattern.
		{
			Keys: bson.D{
				{Key: "ground_id", Value: 1},
				{Key: "ground_slot", Value: 1},
				{Key: "booking_date", Value: 1},
				{Key: "start_time", Value: 1},
				{Key: "end_time", Value: 1},
			},
			Options: options.Index().SetName("ground_slot_date_time_idx"),
		},
		// Backstop against two concurrent requests inserting the exact same
		// start for one slot; the slot lock serializes the general overlap
		// case before insert.
		{
			Keys: bson.D{
				{Key: "ground_id", Value: 1},
				{Key: "ground_slot", Value: 1},
				{Key: "booking_date", Value: 1},
				{Key: "start_time", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot_start").
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": activeStatuses}}),
		},
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}, {Key: "booking_date", Value: -1}},
			Options: options.Index().SetName("customer_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "booking_date", Value: 1}},
			Options: options.Index().SetName("status_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
