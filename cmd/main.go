package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog_service/internal/config"
	"catalog_service/internal/handlers"
	"catalog_service/internal/logger"
	"catalog_service/internal/repository"
	"catalog_service/internal/repository/db"
	"catalog_service/internal/server"
	"catalog_service/internal/service"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title        Catalog Service API
// @version      1.0
// @description  Auth, admin and catalog listing endpoints.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, dialect, err := db.InitDB(cfg.DSN)
	if err != nil {
		log.Fatalw("failed to init store", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()
	log.Infow("store ready", "dialect", dialect)

	sessions, closeSessions, err := openSessions(cfg)
	if err != nil {
		log.Fatalw("failed to init session store", "err", err, "backend", cfg.Sessions.Backend)
	}
	defer closeSessions()
	log.Infow("session backend", "backend", cfg.Sessions.Backend, "ttl", cfg.Sessions.TTL)

	// wire dependencies
	repos := repository.NewRepository(conn, dialect, sessions)
	services := service.NewService(repos, service.Options{
		DefaultLimit: cfg.Catalog.DefaultLimit,
		MaxLimit:     cfg.Catalog.MaxLimit,
		SessionTTL:   cfg.Sessions.TTL,
	})
	if cfg.LogLevel != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	apiHandler := handlers.NewHandler(services, log)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, srv, log); err != nil {
		log.Errorw("server stopped with error", "err", err)
		os.Exit(1)
	}
	log.Infow("server stopped")
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, srv *server.Server, log *logger.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infow("http server listening", "addr", srv.Addr())
		return srv.Run()
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server...")

		// allow in-flight requests to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// openSessions builds the configured session store. A nil store means issued
// tokens are not persisted.
func openSessions(cfg config.Config) (repository.Sessions, func(), error) {
	noop := func() {}

	switch cfg.Sessions.Backend {
	case config.SessionsMemory:
		return repository.NewMemorySessionStore(), noop, nil
	case config.SessionsRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("ping redis at %s: %w", cfg.Redis.Addr, err)
		}
		store := repository.NewRedisSessionStore(client)
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, noop, nil
	}
}
