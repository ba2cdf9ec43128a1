package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"confidential-ledger/config"
	httpHandler "confidential-ledger/internal/adapter/http/handler"
	pgStorage "confidential-ledger/internal/adapter/storage/postgres"
	redisStorage "confidential-ledger/internal/adapter/storage/redis"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/internal/service"
	"confidential-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Confidential Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	handleRepo := pgStorage.NewHandleRepo(pool)
	grantRepo := pgStorage.NewGrantRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	participantRepo := pgStorage.NewParticipantRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	handleCache := redisStorage.NewHandleCache(rdb)
	replayGuard := redisStorage.NewReplayGuard(rdb)

	// Initialize the development encryption engine. It keeps the trapdoor
	// key in-process, so it doubles as the decryption oracle.
	engine, err := service.NewPaillierEngine(cfg.Engine.ModulusBits)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption engine")
	}
	log.Warn().Msg("Development engine active: encrypted state does not survive restarts")

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(participantRepo, hashSvc, tokenSvc)
	capSvc := service.NewCapabilityService(
		accountRepo,
		grantRepo,
		handleRepo,
		eventRepo,
		engine,
		transactor,
		log,
	)
	accSvc := service.NewAccumulatorService(
		accountRepo,
		handleRepo,
		eventRepo,
		capSvc,
		engine,
		transactor,
		handleCache,
		replayGuard,
		log,
	)
	reportingSvc := service.NewReportingService(eventRepo, grantRepo)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AccSvc:         accSvc,
		CapSvc:         capSvc,
		ReportingSvc:   reportingSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
