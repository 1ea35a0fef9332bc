package streams

import (
	"context"
	"sync"
	"time"

	"github.com/streamhub/streamhub/internal/server/models"
	"github.com/streamhub/streamhub/internal/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used by tests and the
// storageless development mode. The compound id+author predicate is evaluated
// under one lock, matching the atomicity of the Mongo implementation.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[primitive.ObjectID]*models.Stream
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[primitive.ObjectID]*models.Stream)}
}

func (r *MemoryRepository) Insert(_ context.Context, stream *models.Stream) (*models.Stream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stream.ID.IsZero() {
		stream.ID = primitive.NewObjectID()
	}
	stream.CreatedAt = time.Now().UTC()

	stored := *stream
	r.byID[stored.ID] = &stored

	return stream, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (r *MemoryRepository) ListByAuthor(_ context.Context, author primitive.ObjectID) ([]*models.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Stream
	for _, s := range r.byID {
		if s.Author == author {
			c := *s
			result = append(result, &c)
		}
	}
	return result, nil
}

func (r *MemoryRepository) UpdateOwned(_ context.Context, id, author primitive.ObjectID, fields Fields) (*models.Stream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok || s.Author != author {
		return nil, shared.ErrNotFound
	}

	s.Title = fields.Title
	s.Description = fields.Description
	s.URL = fields.URL

	c := *s
	return &c, nil
}

func (r *MemoryRepository) DeleteOwned(_ context.Context, id, author primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok || s.Author != author {
		return shared.ErrNotFound
	}

	delete(r.byID, id)
	return nil
}
