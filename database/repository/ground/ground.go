package groundRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pitchbook/database"
	"pitchbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrGroundNotFound is returned when an id does not resolve to a ground.
var ErrGroundNotFound = errors.New("ground not found")

// GroundRepository defines the interface for ground data access.
type GroundRepository interface {
	GetByID(ctx context.Context, id string) (*models.Ground, error)
	List(ctx context.Context, activeOnly bool) ([]models.Ground, error)
	Create(ctx context.Context, ground *models.Ground) error
	Update(ctx context.Context, ground *models.Ground) error
}

// MongoGroundRepo implements GroundRepository using MongoDB.
type MongoGroundRepo struct {
	coll *mongo.Collection
}

// NewMongoGroundRepo creates a new ground repository backed by the "grounds"
// collection.
func NewMongoGroundRepo() GroundRepository {
	coll := database.DB().Collection("grounds")
	repo := &MongoGroundRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create ground indexes: %v\n", err)
	}
	return repo
}

func (r *MongoGroundRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "name", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a ground by its ID.
func (r *MongoGroundRepo) GetByID(ctx context.Context, id string) (*models.Ground, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ground models.Ground
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ground); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGroundNotFound
		}
		return nil, fmt.Errorf("error fetching ground with id %s: %w", id, err)
	}
	return &ground, nil
}

// List returns all grounds, optionally restricted to active ones.
func (r *MongoGroundRepo) List(ctx context.Context, activeOnly bool) ([]models.Ground, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing grounds: %w", err)
	}
	defer cursor.Close(ctx)

	var grounds []models.Ground
	if err := cursor.All(ctx, &grounds); err != nil {
		return nil, fmt.Errorf("error decoding grounds: %w", err)
	}
	return grounds, nil
}

// Create inserts a new ground document.
func (r *MongoGroundRepo) Create(ctx context.Context, ground *models.Ground) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, ground); err != nil {
		return fmt.Errorf("error creating ground: %w", err)
	}
	return nil
}

// Update replaces the stored fields of a ground.
func (r *MongoGroundRepo) Update(ctx context.Context, ground *models.Ground) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": ground.ID}, bson.M{"$set": ground})
	if err != nil {
		return fmt.Errorf("error updating ground %s: %w", ground.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrGroundNotFound
	}
	return nil
}
