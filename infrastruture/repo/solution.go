package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 2 * time.Second

// SolutionRepo handles the persistence of solve jobs.
type SolutionRepo struct {
	collection *mongo.Collection
}

var _ i.SolutionRepo = &SolutionRepo{}

// NewSolutionRepo creates a new SolutionRepo with the given MongoDB client, database name, and collection name.
func NewSolutionRepo(client *mongo.Client, dbName, collectionName string) *SolutionRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SolutionRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the digest index used to look up jobs by maze.
func (r *SolutionRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "digest", Value: 1}},
	})
	return err
}

// Save inserts or updates a solution in the repository.
func (r *SolutionRepo) Save(ctx context.Context, s *dmn.Solution) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"_id": s.ID}
	update := bson.M{
		"$set": bson.M{
			"digest":     s.Digest,
			"maze":       s.Maze,
			"status":     s.Status,
			"cost":       s.Cost,
			"tiles":      s.Tiles,
			"moves":      s.Moves,
			"iterations": s.Iterations,
			"error":      s.Error,
			"updatedAt":  s.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": s.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a solution by its ID.
// Returns dmn.ErrSolutionNotFound if no such solution exists.
func (r *SolutionRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var s dmn.Solution
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrSolutionNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &s, nil
}
