// Package shared holds sentinel errors used across the repository, service,
// and transport layers.
package shared

import "errors"

var (

	// repository-level errors
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// auth-specific errors
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrUserNotFound       = errors.New("no user exists with that email")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid token")

	// stream-specific errors. Wrong id and wrong owner are deliberately
	// indistinguishable so callers cannot probe for existence.
	ErrNotFoundOrForbidden = errors.New("stream not found")

	// boundary errors
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrInternal masks storage and infrastructure failures. The cause is
	// logged server-side and never surfaced to the caller.
	ErrInternal = errors.New("internal error")
)
