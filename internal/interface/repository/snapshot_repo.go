package repository

import (
	"context"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSnapshotRepository implements SnapshotRepository
type MongoSnapshotRepository struct {
	collection *mongo.Collection
}

// NewMongoSnapshotRepository creates a new snapshot repository
func NewMongoSnapshotRepository(db *mongo.Database) repository.SnapshotRepository {
	collection := db.Collection("search_snapshots")

	// One snapshot per search
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"searchId": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoSnapshotRepository{
		collection: collection,
	}
}

// Save archives one raw response payload
func (r *MongoSnapshotRepository) Save(ctx context.Context, snapshot *entity.SearchSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = primitive.NewObjectID().Hex()
	}
	snapshot.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, snapshot)
	return err
}

// FindBySearchID loads the archived payload for one search
func (r *MongoSnapshotRepository) FindBySearchID(ctx context.Context, searchID string) (*entity.SearchSnapshot, error) {
	var snapshot entity.SearchSnapshot
	err := r.collection.FindOne(ctx, bson.M{"searchId": searchID}).Decode(&snapshot)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
