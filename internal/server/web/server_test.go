package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/server/config"
	"github.com/streamhub/streamhub/internal/server/gql"
	"github.com/streamhub/streamhub/internal/server/repositories/streams"
	"github.com/streamhub/streamhub/internal/server/repositories/users"
	"github.com/streamhub/streamhub/internal/server/services"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{SecretKey: "test-secret", TokenValidity: time.Hour}
	userRepo := users.NewMemoryRepository()
	streamRepo := streams.NewMemoryRepository()

	us := services.NewUserService(userRepo, nopLogger{}, cfg)
	ss := services.NewStreamService(streamRepo, nopLogger{})

	schema, err := gql.NewSchema(gql.NewResolver(us, ss, userRepo, nopLogger{}, cfg))
	if err != nil {
		t.Fatalf("NewSchema error: %v", err)
	}

	s := NewServer(":0", nopLogger{}, schema)
	return s.routes()
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func postGraphQL(t *testing.T, h http.Handler, query, token string) *gqlResponse {
	t.Helper()

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := &gqlResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), resp); err != nil {
		t.Fatalf("unmarshal error: %v (body: %s)", err, rec.Body.String())
	}
	return resp
}

func (r *gqlResponse) errorContaining(substr string) bool {
	for _, e := range r.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestPages(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		path string
		want string
	}{
		{"/", "about page"},
		{"/about", "index page"},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status %d", tc.path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("GET %s: content type %q", tc.path, ct)
		}
		if !strings.Contains(rec.Body.String(), tc.want) {
			t.Fatalf("GET %s: body does not link to the other page:\n%s", tc.path, rec.Body.String())
		}
	}
}

func TestGraphQL_RegisterAndAuthenticatedMutation(t *testing.T) {
	h := newTestHandler(t)

	resp := postGraphQL(t, h,
		`mutation { register(input: {email: "a@x.com", password: "pw123"}) { user { id } token } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("register errors: %v", resp.Errors)
	}

	var reg struct {
		User  struct{ ID string }
		Token string
	}
	if err := json.Unmarshal(resp.Data["register"], &reg); err != nil {
		t.Fatalf("decode register: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("no token returned")
	}

	resp = postGraphQL(t, h,
		`mutation { addStream(input: {title: "t", description: "d", url: "u"}) { id author { id } } }`, reg.Token)
	if len(resp.Errors) > 0 {
		t.Fatalf("addStream errors: %v", resp.Errors)
	}

	var created struct {
		ID     string
		Author struct{ ID string }
	}
	if err := json.Unmarshal(resp.Data["addStream"], &created); err != nil {
		t.Fatalf("decode addStream: %v", err)
	}
	if created.Author.ID != reg.User.ID {
		t.Fatalf("author mismatch: got %s want %s", created.Author.ID, reg.User.ID)
	}

	// the created stream is publicly fetchable without a token
	resp = postGraphQL(t, h, fmt.Sprintf(`{ stream(streamId: %q) { id title } }`, created.ID), "")
	if len(resp.Errors) > 0 {
		t.Fatalf("stream errors: %v", resp.Errors)
	}
}

func TestGraphQL_MissingAuthorizationHeader(t *testing.T) {
	h := newTestHandler(t)

	resp := postGraphQL(t, h, `{ streams { id } }`, "")
	if !resp.errorContaining("not authenticated") {
		t.Fatalf("expected 'not authenticated', got %v", resp.Errors)
	}
}
