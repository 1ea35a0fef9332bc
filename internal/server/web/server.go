// Package web exposes the GraphQL API and the companion pages over HTTP.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/streamhub/streamhub/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr   string
	logger logging.Logger
	schema graphql.Schema

	mu        sync.Mutex
	boundAddr string
}

func NewServer(addr string, logger logging.Logger, schema graphql.Schema) *Server {
	return &Server{
		addr:   addr,
		logger: logger.With("module", "web_server"),
		schema: schema,
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	gqlHandler := handler.New(&handler.Config{
		Schema:   &s.schema,
		Pretty:   true,
		GraphiQL: true,
	})
	mux.Handle("/graphql", withAuthorization(gqlHandler))

	// Exact-match "/" only (the "/{$}" pattern needs Go 1.22+, and this
	// module is built with Go 1.21).
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		s.indexPage(w, r)
	})
	mux.HandleFunc("/about", s.aboutPage)

	return s.withRequestLog(mux)
}

// Addr returns the bound listen address once Run has opened its listener,
// or "" before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boundAddr
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully. It does
// not return until in-flight requests have drained, so callers may tear down
// shared resources as soon as Run comes back.
func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.boundAddr = listen.Addr().String()
	s.mu.Unlock()

	srv := &http.Server{
		Handler: s.routes(),
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "error shutting down server", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Serve returns as soon as the listener closes; Shutdown is still
	// draining in-flight requests at that point. Wait for it to finish.
	<-shutdownDone

	return nil
}
