package users

import (
	"context"
	"sync"
	"time"

	"github.com/streamhub/streamhub/internal/server/models"
	"github.com/streamhub/streamhub/internal/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used by tests and the
// storageless development mode. The email uniqueness invariant is enforced
// under the same lock as the insert, mirroring the unique index semantics of
// the Mongo implementation.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[primitive.ObjectID]*models.User
	byEmail map[string]primitive.ObjectID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[primitive.ObjectID]*models.User),
		byEmail: make(map[string]primitive.ObjectID),
	}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, shared.ErrAlreadyExists
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now().UTC()

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	return user, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	c := *u
	return &c, nil
}
