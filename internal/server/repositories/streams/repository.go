// Package streams provides persistence for stream posts, including the
// compound id+author predicates that make ownership checks atomic.
package streams

import (
	"context"

	"github.com/streamhub/streamhub/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fields carries the mutable attributes applied by UpdateOwned. The author
// field is deliberately absent: ownership never changes.
type Fields struct {
	Title       string
	Description string
	URL         string
}

type Repository interface {
	// Insert stores a new stream and assigns its id.
	Insert(ctx context.Context, stream *models.Stream) (*models.Stream, error)

	// GetByID returns the stream with the given id or shared.ErrNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Stream, error)

	// ListByAuthor returns all streams whose author equals the given id.
	ListByAuthor(ctx context.Context, author primitive.ObjectID) ([]*models.Stream, error)

	// UpdateOwned applies fields to the stream matching BOTH id and author in
	// one atomic operation and returns the updated document. When no document
	// matches — wrong id or wrong owner, indistinguishably — it returns
	// shared.ErrNotFound.
	UpdateOwned(ctx context.Context, id, author primitive.ObjectID, fields Fields) (*models.Stream, error)

	// DeleteOwned removes the stream matching BOTH id and author atomically,
	// returning shared.ErrNotFound when no document matches.
	DeleteOwned(ctx context.Context, id, author primitive.ObjectID) error
}
