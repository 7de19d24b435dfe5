// Package server initializes and runs the application: it opens the
// database, applies migrations, wires the services, and starts the HTTP
// server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/projecthub/internal/logging"
	"github.com/dmitrijs2005/projecthub/internal/server/config"
	"github.com/dmitrijs2005/projecthub/internal/server/httpapi"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/projecthub/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	us := services.NewUserService(db, rm, cfg)
	ps := services.NewProjectService(db, rm)

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, us, ps, cfg.SecretKey)

	return &App{config: cfg, logger: logger, db: db, repos: rm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

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

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	return nil
}
