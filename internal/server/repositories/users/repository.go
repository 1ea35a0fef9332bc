// Package users provides persistence for user credential records.
package users

import (
	"context"

	"github.com/streamhub/streamhub/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	// Create inserts a new user. Returns shared.ErrAlreadyExists when a user
	// with the same email is present; uniqueness is enforced by the store so
	// concurrent duplicate registrations cannot both succeed.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email or shared.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id or shared.ErrNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}
