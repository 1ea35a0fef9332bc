package streams

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/streamhub/streamhub/internal/server/models"
	"github.com/streamhub/streamhub/internal/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements stream storage over a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository constructs a repository bound to db's "streams" collection.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection("streams")}
}

func (r *MongoRepository) Insert(ctx context.Context, stream *models.Stream) (*models.Stream, error) {
	if stream.ID.IsZero() {
		stream.ID = primitive.NewObjectID()
	}
	stream.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, stream); err != nil {
		return nil, fmt.Errorf("error inserting stream: %w", err)
	}

	return stream, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Stream, error) {
	stream := &models.Stream{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(stream)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("error finding stream: %w", err)
	}
	return stream, nil
}

func (r *MongoRepository) ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]*models.Stream, error) {
	cur, err := r.coll.Find(ctx, bson.M{"author": author})
	if err != nil {
		return nil, fmt.Errorf("error listing streams: %w", err)
	}
	defer cur.Close(ctx)

	var result []*models.Stream
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding streams: %w", err)
	}
	return result, nil
}

// UpdateOwned relies on a single findOneAndUpdate with the compound
// {_id, author} filter: existence and ownership are checked by the store in
// the same atomic operation, leaving no check-then-act window.
func (r *MongoRepository) UpdateOwned(ctx context.Context, id, author primitive.ObjectID, fields Fields) (*models.Stream, error) {
	filter := bson.M{"_id": id, "author": author}
	update := bson.M{"$set": bson.M{
		"title":       fields.Title,
		"description": fields.Description,
		"url":         fields.URL,
	}}

	stream := &models.Stream{}
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(stream)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("error updating stream: %w", err)
	}
	return stream, nil
}

func (r *MongoRepository) DeleteOwned(ctx context.Context, id, author primitive.ObjectID) error {
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id, "author": author}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.ErrNotFound
		}
		return fmt.Errorf("error deleting stream: %w", err)
	}
	return nil
}
