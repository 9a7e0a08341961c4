package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wallet-ledger/config"
	httpHandler "wallet-ledger/internal/adapter/http/handler"
	pgStorage "wallet-ledger/internal/adapter/storage/postgres"
	redisStorage "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("WLG_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting wallet ledger")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	feeRuleRepo := pgStorage.NewFeeRuleRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	revenueRepo := pgStorage.NewRevenueRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis-backed stores
	feeRuleCache := redisStorage.NewFeeRuleCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	var publisher ports.EventPublisher
	if cfg.Events.Enabled {
		publisher = redisStorage.NewEventPublisher(rdb, cfg.Events.Channel)
	}

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	refGen := service.NewReferenceGenerator(cfg.Ledger.ReferenceAttempts)
	journal := service.NewLedgerJournalService(ledgerRepo)

	feeCatalog := service.NewFeeCatalogService(
		feeRuleRepo,
		feeRuleCache,
		cfg.Fees.CacheTTL,
		cfg.Fees.DefaultRegion,
		logger.Component(log, "fee_catalog"),
	)
	walletGuard := service.NewWalletGuardService(
		walletRepo,
		feeCatalog,
		cfg.Fees.DefaultRegion,
		cfg.Fees.Tolerance(),
		logger.Component(log, "wallet_guard"),
	)
	poster := service.NewTransactionPosterService(
		transactor,
		txRepo,
		walletRepo,
		journal,
		refGen,
		publisher,
		cfg.Ledger.TransactionPrefix,
		logger.Component(log, "transaction_poster"),
	)
	recognizer := service.NewRevenueRecognizerService(
		transactor,
		revenueRepo,
		txRepo,
		journal,
		refGen,
		publisher,
		cfg.Ledger.RevenuePrefix,
		logger.Component(log, "revenue_recognizer"),
	)
	batcher := service.NewSettlementBatcherService(
		transactor,
		revenueRepo,
		txRepo,
		journal,
		refGen,
		publisher,
		logger.Component(log, "settlement_batcher"),
	)
	reportingSvc := service.NewReportingService(txRepo, ledgerRepo, revenueRepo)
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	openAPISpec, err := os.ReadFile("docs/api/openapi.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("OpenAPI spec not found, /swagger/spec will answer 404")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		FeeCatalog:        feeCatalog,
		WalletGuard:       walletGuard,
		TransactionPoster: poster,
		RevenueRecognizer: recognizer,
		SettlementBatcher: batcher,
		ReportingSvc:      reportingSvc,
		TokenSvc:          tokenSvc,
		RateLimitStore:    rateLimitStore,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		AuditSvc:    auditSvc,
		OpenAPISpec: openAPISpec,
		Mode:        cfg.Server.Mode,
		Logger:      log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
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
