package web

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/streamhub/streamhub/internal/logging"
)

func TestWithRequestLog_IDAvailableToHandlerAndLogLine(t *testing.T) {
	var buf bytes.Buffer
	s := &Server{logger: logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))}

	var seen string
	h := s.withRequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// the id exists while the request is being handled, not just afterwards
	if seen == "" {
		t.Fatal("handler saw no request id on its context")
	}

	out := buf.String()
	if !strings.Contains(out, "request_id="+seen) {
		t.Fatalf("access log does not carry the handler's request id %q:\n%s", seen, out)
	}
	if !strings.Contains(out, "status=418") {
		t.Fatalf("access log does not carry the response status:\n%s", out)
	}
	if !strings.Contains(out, "path=/graphql") {
		t.Fatalf("access log does not carry the request path:\n%s", out)
	}
}

func TestRequestID_AbsentOutsideRequest(t *testing.T) {
	t.Parallel()

	if id := RequestID(context.Background()); id != "" {
		t.Fatalf("expected empty id on a fresh context, got %q", id)
	}
}
