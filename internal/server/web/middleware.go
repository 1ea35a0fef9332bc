package web

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/streamhub/streamhub/internal/server/auth"
)

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID returns the id assigned to the request by withRequestLog, or ""
// outside a request.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// withAuthorization stashes the Authorization header on the request context
// so the per-operation resolver gates can authenticate. Verification happens
// at the gate, not here: register/login and the public stream lookup share
// the same endpoint.
func withAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := auth.WithAuthorization(r.Context(), r.Header.Get("Authorization"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLog assigns each request an id before it is handled, carries it
// on the context so downstream log lines can correlate, and logs one line per
// request under the same id.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		log := s.logger.With("request_id", requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		log.Info(ctx, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
