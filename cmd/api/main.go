package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartpay-rewards/config"
	httpHandler "smartpay-rewards/internal/adapter/http/handler"
	pgStorage "smartpay-rewards/internal/adapter/storage/postgres"
	redisStorage "smartpay-rewards/internal/adapter/storage/redis"
	"smartpay-rewards/internal/core/locator"
	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/internal/observability"
	"smartpay-rewards/internal/service"
	"smartpay-rewards/pkg/logger"

	"github.com/gagliardetto/solana-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load(os.Getenv("RWD_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("version", version).
		Msg("Starting SmartPay Rewards")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be set (RWD_JWT_SECRET)")
	}

	ctx := context.Background()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Tracing, version)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn().Err(err).Msg("Tracer shutdown failed")
		}
	}()

	loc, err := locator.NewFromBase58(cfg.Program.ProgramID)
	if err != nil {
		log.Fatal().Err(err).Str("program_id", cfg.Program.ProgramID).Msg("Invalid program id")
	}

	var bootstrapAdmin *solana.PublicKey
	if cfg.Program.BootstrapAdmin != "" {
		admin, err := solana.PublicKeyFromBase58(cfg.Program.BootstrapAdmin)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid program.bootstrap_admin")
		}
		bootstrapAdmin = &admin
	}

	// PostgreSQL
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}
	log.Info().Msg("PostgreSQL connected")

	// Redis
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories and the token ledger
	programRepo := pgStorage.NewProgramStateRepo(pool)
	recordRepo := pgStorage.NewTransactionRecordRepo(pool)
	userRepo := pgStorage.NewUserRewardsRepo(pool)
	eventRepo := pgStorage.NewRewardEventRepo(pool)
	ledger := pgStorage.NewTokenLedger(pool, loc)
	transactor := pgStorage.NewTransactor(pool)

	// Redis stores
	processedCache := redisStorage.NewProcessedCache(rdb)
	challengeStore := redisStorage.NewChallengeStore(rdb)
	publisher := redisStorage.NewEventPublisher(rdb, cfg.Events.Channel)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	// Services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(challengeStore, tokenSvc, cfg.Auth.ChallengeTTL)
	programSvc := service.NewProgramService(
		programRepo, eventRepo, ledger, transactor, publisher, loc, metrics,
		service.ProgramDefaults{RewardRateBps: cfg.Program.DefaultRewardRateBps, Decimals: cfg.Program.TokenDecimals},
		bootstrapAdmin, log,
	)
	issuanceSvc := service.NewIssuanceService(
		programRepo, recordRepo, userRepo, eventRepo, ledger, transactor,
		processedCache, publisher, loc, metrics, cfg.Cache.ProcessedTTL, log,
	)
	redemptionSvc := service.NewRedemptionService(
		programRepo, userRepo, eventRepo, ledger, transactor, publisher, loc, metrics, log,
	)
	statsSvc := service.NewStatsService(programRepo, recordRepo, userRepo, eventRepo, ledger, loc)

	if state, err := programSvc.GetProgramState(ctx); err == nil {
		metrics.RewardRate(state.RewardRateBps)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		ProgramSvc:     programSvc,
		IssuanceSvc:    issuanceSvc,
		RedemptionSvc:  redemptionSvc,
		StatsSvc:       statsSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		Registry:       registry,
		ServiceName:    cfg.Tracing.ServiceName,
		AllowedOrigins: cfg.Server.CORSOrigins,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Str("program_id", loc.ProgramID().String()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
