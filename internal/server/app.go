// Package server initializes and runs the main application server. It
// connects to MongoDB, wires repositories, services, and the GraphQL schema,
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/server/config"
	"github.com/streamhub/streamhub/internal/server/gql"
	"github.com/streamhub/streamhub/internal/server/repositories/streams"
	"github.com/streamhub/streamhub/internal/server/repositories/users"
	"github.com/streamhub/streamhub/internal/server/services"
	"github.com/streamhub/streamhub/internal/server/storage"
	"github.com/streamhub/streamhub/internal/server/web"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	config *config.Config
	logger logging.Logger
	client *mongo.Client
	server *web.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	client, err := storage.Connect(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	db := client.Database(cfg.DatabaseName)
	if err := storage.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("index init error: %w", err)
	}

	userRepo := users.NewMongoRepository(db)
	streamRepo := streams.NewMongoRepository(db)

	us := services.NewUserService(userRepo, logger, cfg)
	ss := services.NewStreamService(streamRepo, logger)

	schema, err := gql.NewSchema(gql.NewResolver(us, ss, userRepo, logger, cfg))
	if err != nil {
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	srv := web.NewServer(cfg.Addr, logger, schema)

	return &App{config: cfg, logger: logger, client: client, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.client.Disconnect(context.Background()); err != nil {
		app.logger.Error(ctx, "error disconnecting from mongodb", "error", err)
	}
}
