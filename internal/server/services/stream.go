package services

import (
	"context"
	"errors"

	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/server/models"
	"github.com/streamhub/streamhub/internal/server/repositories/streams"
	"github.com/streamhub/streamhub/internal/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StreamInput carries the caller-supplied stream attributes. Any author the
// caller might supply never reaches this type; ownership comes exclusively
// from the authenticated identity.
type StreamInput struct {
	Title       string
	Description string
	URL         string
}

// StreamService implements ownership-scoped CRUD over stream posts.
type StreamService struct {
	streams streams.Repository
	logger  logging.Logger
}

func NewStreamService(repo streams.Repository, logger logging.Logger) *StreamService {
	return &StreamService{
		streams: repo,
		logger:  logger.With("module", "stream_service"),
	}
}

// Create stores a new stream stamped with the authenticated owner.
func (s *StreamService) Create(ctx context.Context, input StreamInput, owner primitive.ObjectID) (*models.Stream, error) {
	stream, err := s.streams.Insert(ctx, &models.Stream{
		Title:       input.Title,
		Description: input.Description,
		URL:         input.URL,
		Author:      owner,
	})
	if err != nil {
		s.logger.Error(ctx, "error inserting stream", "error", err)
		return nil, shared.ErrInternal
	}
	return stream, nil
}

// GetByID is a public single-item lookup; it is deliberately not
// ownership-scoped so stream posts stay shareable by link.
func (s *StreamService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Stream, error) {
	stream, err := s.streams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error(ctx, "error finding stream", "error", err)
		return nil, shared.ErrInternal
	}
	return stream, nil
}

// ListOwned returns the streams created by the authenticated owner and
// nobody else's.
func (s *StreamService) ListOwned(ctx context.Context, owner primitive.ObjectID) ([]*models.Stream, error) {
	list, err := s.streams.ListByAuthor(ctx, owner)
	if err != nil {
		s.logger.Error(ctx, "error listing streams", "error", err)
		return nil, shared.ErrInternal
	}
	return list, nil
}

// Update applies input to the stream matching both id and owner. Wrong id and
// wrong owner both surface as shared.ErrNotFoundOrForbidden so callers cannot
// probe whether a foreign stream exists.
func (s *StreamService) Update(ctx context.Context, id primitive.ObjectID, input StreamInput, owner primitive.ObjectID) (*models.Stream, error) {
	stream, err := s.streams.UpdateOwned(ctx, id, owner, streams.Fields{
		Title:       input.Title,
		Description: input.Description,
		URL:         input.URL,
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFoundOrForbidden
		}
		s.logger.Error(ctx, "error updating stream", "error", err)
		return nil, shared.ErrInternal
	}
	return stream, nil
}

// Delete removes the stream matching both id and owner, with the same
// compound-predicate semantics as Update.
func (s *StreamService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if err := s.streams.DeleteOwned(ctx, id, owner); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFoundOrForbidden
		}
		s.logger.Error(ctx, "error deleting stream", "error", err)
		return shared.ErrInternal
	}
	return nil
}
