package users

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
)

// MongoRepository implements user storage over a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository constructs a repository bound to db's "users" collection.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection("users")}
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		// The unique index on email turns the duplicate insert into an
		// atomic conflict instead of a check-then-act race.
		if mongo.IsDuplicateKeyError(err) {
			return nil, shared.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	return user, nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	return user, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user := &models.User{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("error finding user by id: %w", err)
	}
	return user, nil
}
