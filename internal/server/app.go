// Package server initializes and runs the application server. It opens the
// database, applies migrations, wires the services, and starts the HTTP
// endpoint with graceful shutdown.
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

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pingreng/pingr-server/internal/cryptox"
	"github.com/pingreng/pingr-server/internal/logging"
	"github.com/pingreng/pingr-server/internal/server/config"
	"github.com/pingreng/pingr-server/internal/server/friends"
	"github.com/pingreng/pingr-server/internal/server/messages"
	"github.com/pingreng/pingr-server/internal/server/migrations"
	"github.com/pingreng/pingr-server/internal/server/rest"
	"github.com/pingreng/pingr-server/internal/server/users"
	"github.com/pingreng/pingr-server/internal/server/version"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	codec, err := cryptox.NewCodec(cfg.Algorithm, cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("codec init error: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userRepo := users.NewPostgresRepository(db)
	userService := users.NewService(userRepo)
	friendService := friends.NewService(friends.NewPostgresRepository(db), userRepo)
	messageService := messages.NewService(messages.NewPostgresRepository(db), userRepo, codec)
	versionRepo := version.NewPostgresRepository(db)

	srv := rest.NewServer(cfg, logger, userService, friendService, messageService, versionRepo)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...", "env", app.config.Environment)

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
}
