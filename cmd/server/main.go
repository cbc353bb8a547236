package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinicore/user-system/internal/api"
	"github.com/clinicore/user-system/internal/core/service"
	"github.com/clinicore/user-system/internal/infrastructure/config"
	mongodb "github.com/clinicore/user-system/internal/infrastructure/db/mongo"
	redisdb "github.com/clinicore/user-system/internal/infrastructure/db/redis"
	"github.com/clinicore/user-system/internal/infrastructure/queue"
	"github.com/clinicore/user-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Infrastructure ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, c := context.WithTimeout(context.Background(), shutdownTimeout)
		defer c()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	// --- Audit trail ---
	auditRepo := mongodb.NewAuditRepository(db)
	auditDispatcher := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, log)
	auditDispatcher.Start(ctx)

	// --- Core services, composed explicitly ---
	hasher, err := service.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid hashing configuration")
	}
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, auditDispatcher, log)
	userService := service.NewUserService(userRepo, hasher, auditDispatcher, log)

	e := api.NewRouter(api.Deps{
		AuthService:         authService,
		UserService:         userService,
		Tokens:              tokens,
		Mongo:               db,
		Redis:               rdb,
		Log:                 log,
		IncludeErrorDetails: cfg.IsDevelopment(),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
