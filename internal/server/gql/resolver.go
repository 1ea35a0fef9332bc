package gql

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/server/auth"
	"github.com/streamhub/streamhub/internal/server/config"
	"github.com/streamhub/streamhub/internal/server/models"
	"github.com/streamhub/streamhub/internal/server/repositories/users"
	"github.com/streamhub/streamhub/internal/server/services"
	"github.com/streamhub/streamhub/internal/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolver wires the GraphQL operations to the underlying services.
type Resolver struct {
	users     *services.UserService
	streams   *services.StreamService
	userRepo  users.Repository
	logger    logging.Logger
	jwtSecret []byte
}

func NewResolver(us *services.UserService, ss *services.StreamService, userRepo users.Repository, logger logging.Logger, cfg *config.Config) *Resolver {
	return &Resolver{
		users:     us,
		streams:   ss,
		userRepo:  userRepo,
		logger:    logger.With("module", "gql"),
		jwtSecret: []byte(cfg.SecretKey),
	}
}

// authenticate is the per-operation gate guarding every owner-scoped
// resolver. Downstream work never starts unless it succeeds.
func (r *Resolver) authenticate(ctx context.Context) (primitive.ObjectID, error) {
	return auth.Authenticate(ctx, r.jwtSecret)
}

func streamInputFromArgs(input map[string]interface{}) services.StreamInput {
	title, _ := input["title"].(string)
	description, _ := input["description"].(string)
	url, _ := input["url"].(string)
	return services.StreamInput{Title: title, Description: description, URL: url}
}

func (r *Resolver) register(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	email, _ := input["email"].(string)
	password, _ := input["password"].(string)

	return r.users.Register(p.Context, email, password)
}

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	email, _ := input["email"].(string)
	password, _ := input["password"].(string)

	return r.users.Login(p.Context, email, password)
}

// stream is the public single-item lookup; no identity involved.
func (r *Resolver) stream(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["streamId"].(primitive.ObjectID)
	if !ok {
		return nil, shared.ErrMalformedIdentifier
	}

	s, err := r.streams.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *Resolver) streamsOwned(p graphql.ResolveParams) (interface{}, error) {
	owner, err := r.authenticate(p.Context)
	if err != nil {
		return nil, err
	}
	return r.streams.ListOwned(p.Context, owner)
}

func (r *Resolver) addStream(p graphql.ResolveParams) (interface{}, error) {
	owner, err := r.authenticate(p.Context)
	if err != nil {
		return nil, err
	}

	input, _ := p.Args["input"].(map[string]interface{})
	return r.streams.Create(p.Context, streamInputFromArgs(input), owner)
}

func (r *Resolver) editStream(p graphql.ResolveParams) (interface{}, error) {
	owner, err := r.authenticate(p.Context)
	if err != nil {
		return nil, err
	}

	input, _ := p.Args["input"].(map[string]interface{})
	id, ok := input["id"].(primitive.ObjectID)
	if !ok {
		return nil, shared.ErrMalformedIdentifier
	}

	return r.streams.Update(p.Context, id, streamInputFromArgs(input), owner)
}

func (r *Resolver) deleteStream(p graphql.ResolveParams) (interface{}, error) {
	owner, err := r.authenticate(p.Context)
	if err != nil {
		return nil, err
	}

	id, ok := p.Args["streamId"].(primitive.ObjectID)
	if !ok {
		return nil, shared.ErrMalformedIdentifier
	}

	if err := r.streams.Delete(p.Context, id, owner); err != nil {
		return nil, err
	}
	return true, nil
}

// streamAuthor resolves the author field of a stream into the full user
// record.
func (r *Resolver) streamAuthor(p graphql.ResolveParams) (interface{}, error) {
	s, ok := p.Source.(*models.Stream)
	if !ok {
		return nil, nil
	}

	u, err := r.userRepo.GetByID(p.Context, s.Author)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		r.logger.Error(p.Context, "error resolving stream author", "error", err)
		return nil, shared.ErrInternal
	}
	return u, nil
}
