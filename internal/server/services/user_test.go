package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/server/auth"
	"github.com/streamhub/streamhub/internal/server/config"
	"github.com/streamhub/streamhub/internal/server/models"
	"github.com/streamhub/streamhub/internal/server/repositories/users"
	"github.com/streamhub/streamhub/internal/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- test logger ----

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

const testSecret = "super-secret"

func newUserService(t *testing.T, repo users.Repository) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:     testSecret,
		TokenValidity: time.Hour,
	}
	return NewUserService(repo, nopLogger{}, cfg)
}

// erroring users repository for the internal-error masking cases
type failingUsersRepo struct{ err error }

func (f *failingUsersRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, f.err
}
func (f *failingUsersRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, f.err
}
func (f *failingUsersRepo) GetByID(context.Context, primitive.ObjectID) (*models.User, error) {
	return nil, f.err
}

func TestUserService_RegisterThenLogin(t *testing.T) {
	t.Parallel()

	repo := users.NewMemoryRepository()
	svc := newUserService(t, repo)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if reg.User.ID.IsZero() {
		t.Fatal("registered user has no id")
	}
	if reg.User.PasswordHash == "pw123" {
		t.Fatal("password stored in plaintext")
	}

	login, err := svc.Login(ctx, "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	// both tokens must verify and carry the same subject
	for _, tok := range []string{reg.Token, login.Token} {
		sub, err := auth.GetUserIDFromToken(tok, []byte(testSecret))
		if err != nil {
			t.Fatalf("token does not verify: %v", err)
		}
		if sub != reg.User.ID.Hex() {
			t.Fatalf("subject mismatch: got %q want %q", sub, reg.User.ID.Hex())
		}
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := users.NewMemoryRepository()
	svc := newUserService(t, repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "pw123"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Register(ctx, "a@x.com", "other")
	if !errors.Is(err, shared.ErrEmailAlreadyExists) {
		t.Fatalf("expected shared.ErrEmailAlreadyExists, got %v", err)
	}

	// the losing registration must not have inserted a second record
	u, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if !auth.VerifyPassword("pw123", u.PasswordHash) {
		t.Fatal("stored credentials were overwritten by the failed registration")
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := users.NewMemoryRepository()
	svc := newUserService(t, repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "pw123"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Login(ctx, "a@x.com", "wrong")
	if !errors.Is(err, shared.ErrInvalidCredentials) {
		t.Fatalf("expected shared.ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newUserService(t, users.NewMemoryRepository())

	_, err := svc.Login(context.Background(), "missing@x.com", "pw")
	if !errors.Is(err, shared.ErrUserNotFound) {
		t.Fatalf("expected shared.ErrUserNotFound, got %v", err)
	}
}

func TestUserService_StorageErrorsMasked(t *testing.T) {
	t.Parallel()

	svc := newUserService(t, &failingUsersRepo{err: errors.New("connection reset")})
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "pw"); !errors.Is(err, shared.ErrInternal) {
		t.Fatalf("expected shared.ErrInternal from Register, got %v", err)
	}
	if _, err := svc.Login(ctx, "a@x.com", "pw"); !errors.Is(err, shared.ErrInternal) {
		t.Fatalf("expected shared.ErrInternal from Login, got %v", err)
	}
}
