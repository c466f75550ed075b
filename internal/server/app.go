// Package server wires the application together: configuration,
// storage backends, the account usecase and both delivery surfaces
// (HTTP and gRPC), plus graceful shutdown on OS signals.
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

	"github.com/redis/go-redis/v9"

	"github.com/writehub/auth/internal/logging"
	"github.com/writehub/auth/internal/server/config"
	"github.com/writehub/auth/internal/server/httpapi"
	"github.com/writehub/auth/internal/server/password"
	"github.com/writehub/auth/internal/server/repositories/sessions"
	usersrepo "github.com/writehub/auth/internal/server/repositories/users"
	"github.com/writehub/auth/internal/server/storage"
	"github.com/writehub/auth/internal/server/users"

	gs "github.com/writehub/auth/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	redis      *redis.Client
	httpServer *httpapi.Server
	grpcServer *gs.GRPCServer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := storage.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rdb, err := storage.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}

	userRepo := usersrepo.NewPostgresRepository(db)
	sessionRepo := sessions.NewRedisRepository(rdb, cfg.SessionTTL)

	hasher := password.NewHasher(password.DefaultParams())
	userService := users.NewService(userRepo, hasher, logger)

	httpServer := httpapi.NewServer(cfg.HTTPAddr, logger, userService, sessionRepo,
		cfg.SecureCookie, cfg.CORSOrigins)
	grpcServer := gs.NewGRPCServer(cfg.GRPCAddr, logger, sessionRepo)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         db,
		redis:      rdb,
		httpServer: httpServer,
		grpcServer: grpcServer,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpcServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts both servers and blocks until the context is cancelled
// or an OS signal arrives. A failure in either server stops the other.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
}

func (app *App) close(ctx context.Context) {
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db failed", "error", err.Error())
	}
	if err := app.redis.Close(); err != nil {
		app.logger.Error(ctx, "closing redis failed", "error", err.Error())
	}
}
