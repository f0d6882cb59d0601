package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/dogfinder/internal/auth"
	"github.com/rogerio-castellano/dogfinder/internal/config"
	"github.com/rogerio-castellano/dogfinder/internal/db"
	api "github.com/rogerio-castellano/dogfinder/internal/http"
	"github.com/rogerio-castellano/dogfinder/internal/http/handlers"
	rl "github.com/rogerio-castellano/dogfinder/internal/http/rate_limiter"
	"github.com/rogerio-castellano/dogfinder/internal/logging"
	"github.com/rogerio-castellano/dogfinder/internal/redissvc"
	"github.com/rogerio-castellano/dogfinder/internal/repo"
	"github.com/rogerio-castellano/dogfinder/internal/seed"
)

const (
	cleanupInterval = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// @title DogFinder Sandbox API
// @version 1.0
// @description Local stand-in for the Fetch dog adoption service.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name fetch-access-token
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("sandbox", pflag.ContinueOnError)
	configPath := flags.String("config", "", "config file")
	flags.String("addr", "", "listen address")
	flags.String("database-url", "", "postgres DSN; empty keeps data in memory")
	flags.String("redis-addr", "", "redis address for token revocation; empty keeps it in memory")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	v := config.New()
	if err := config.Load(v, *configPath); err != nil {
		return err
	}
	if err := config.BindFlags(v, flags, map[string]string{
		"addr":         config.KeySandboxAddr,
		"database-url": config.KeySandboxDatabaseURL,
		"redis-addr":   config.KeySandboxRedisAddr,
	}); err != nil {
		return err
	}
	cfg, err := config.LoadSandbox(v)
	if err != nil {
		return err
	}

	logger, err := logging.NewService(logging.ParseLevel(cfg.LogLevel, false))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := setupRepos(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	g, gctx := errgroup.WithContext(ctx)

	var store auth.RevocationStore
	if cfg.RedisAddr != "" {
		redisService, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer redisService.Close()
		store = redisService
		logger.Info("token revocation backed by redis", zap.String("addr", cfg.RedisAddr))
	} else {
		memStore := auth.NewMemoryRevocationStore()
		g.Go(func() error {
			memStore.StartCleaner(gctx, cleanupInterval)
			return nil
		})
		store = memStore
	}

	limiter := rl.New(cfg.RateLimit, cfg.RateBurst)
	g.Go(func() error {
		limiter.StartVisitorCleanupLoop(gctx, time.Minute)
		return nil
	})

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: api.NewRouter(api.RouterOptions{
			Tokens:         auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, store),
			Limiter:        limiter,
			Logger:         logger,
			AllowedOrigins: cfg.AllowedOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.Info("server running", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// setupRepos picks postgres when a DSN is configured and seeds empty
// storage. The returned *sql.DB is nil for in-memory storage.
func setupRepos(ctx context.Context, cfg config.Sandbox, logger *zap.Logger) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		dogs := repo.NewInMemoryDogRepository()
		locs := repo.NewInMemoryLocationRepository()
		if err := seed.Load(ctx, dogs, locs, cfg.SeedDogs); err != nil {
			return nil, err
		}
		handlers.SetDogRepo(dogs)
		handlers.SetLocationRepo(locs)
		logger.Info("using in-memory storage", zap.Int("dogs", cfg.SeedDogs))
		return nil, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		database.Close()
		return nil, err
	}
	dogs := repo.NewPostgresDogRepository(database)
	locs := repo.NewPostgresLocationRepository(database)

	empty, err := db.IsEmpty(ctx, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	if empty {
		if err := seed.Load(ctx, dogs, locs, cfg.SeedDogs); err != nil {
			database.Close()
			return nil, err
		}
		logger.Info("seeded database", zap.Int("dogs", cfg.SeedDogs))
	}
	handlers.SetDogRepo(dogs)
	handlers.SetLocationRepo(locs)
	return database, nil
}
