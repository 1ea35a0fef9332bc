package auth

import (
	"context"
	"strings"

	"github.com/streamhub/streamhub/internal/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey int

const (
	authorizationKey ctxKey = iota
	userIDKey
)

// WithAuthorization stashes the raw Authorization header value on the request
// context so per-operation gates can authenticate lazily.
func WithAuthorization(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, authorizationKey, header)
}

// Authorization returns the raw Authorization header stored on ctx, if any.
func Authorization(ctx context.Context) string {
	v, _ := ctx.Value(authorizationKey).(string)
	return v
}

// WithUserID attaches the authenticated user id to ctx. The value is scoped
// to a single in-flight request and never reused across requests.
func WithUserID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID returns the authenticated user id attached to ctx.
func UserID(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(userIDKey).(primitive.ObjectID)
	return id, ok
}

// Authenticate extracts the bearer token from the Authorization header stored
// on ctx, verifies it, and returns the subject's user id. Every failure mode
// (missing header, bad scheme, forged/expired/malformed token, unparseable
// subject) collapses to shared.ErrUnauthenticated.
func Authenticate(ctx context.Context, secretKey []byte) (primitive.ObjectID, error) {
	header := Authorization(ctx)
	if header == "" {
		return primitive.NilObjectID, shared.ErrUnauthenticated
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return primitive.NilObjectID, shared.ErrUnauthenticated
	}

	userID, err := GetUserIDFromToken(token, secretKey)
	if err != nil {
		return primitive.NilObjectID, shared.ErrUnauthenticated
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, shared.ErrUnauthenticated
	}

	return id, nil
}
