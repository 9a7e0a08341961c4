package handler

import (
	"wallet-ledger/internal/adapter/http/middleware"
	redisStore "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	FeeCatalog        ports.FeeCatalog
	WalletGuard       ports.WalletGuard
	TransactionPoster ports.TransactionPoster
	RevenueRecognizer ports.RevenueRecognizer
	SettlementBatcher ports.SettlementBatcher
	ReportingSvc      ports.ReportingService
	TokenSvc          ports.TokenService
	RateLimitStore    *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers    []ports.HealthChecker
	AuditSvc          ports.AuditService // nil = audit logging disabled
	OpenAPISpec       []byte
	Mode              string
	Logger            zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	docs := NewDocsHandler(deps.OpenAPISpec)
	r.GET("/swagger", docs.UI)
	r.GET("/swagger/spec", docs.Spec)

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	staff := middleware.RequireRole(middleware.RoleStaff)

	feeHandler := NewFeeHandler(deps.FeeCatalog)
	walletHandler := NewWalletHandler(deps.WalletGuard)
	txHandler := NewTransactionHandler(deps.TransactionPoster, deps.ReportingSvc)
	revenueHandler := NewRevenueHandler(deps.RevenueRecognizer, deps.SettlementBatcher, deps.ReportingSvc)

	// --- Any authenticated actor ---
	v1.POST("/fees/quote", rl("fees_quote"), feeHandler.Quote)
	v1.POST("/wallets/:ref/eligibility", rl("eligibility"), walletHandler.CheckEligibility)

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", rl("transactions"), txHandler.Post)
		transactions.GET("/:reference", rl("reads"), txHandler.Get)
	}

	// --- Staff only ---
	revenue := v1.Group("/revenue", staff)
	{
		revenue.POST("", rl("revenue"), revenueHandler.Record)
		revenue.GET("", rl("reads"), revenueHandler.List)
	}

	v1.POST("/settlements", staff, rl("settlements"), revenueHandler.Settle)
	v1.GET("/ledger/:reference", staff, rl("reads"), revenueHandler.Ledger)

	feeRules := v1.Group("/fee-rules", staff)
	{
		feeRules.GET("", rl("reads"), feeHandler.ListRules)
		feeRules.POST("", rl("fee_rules"), feeHandler.CreateRule)
		feeRules.GET("/:id", rl("reads"), feeHandler.GetRule)
		feeRules.POST("/:id/deactivate", rl("fee_rules"), feeHandler.DeactivateRule)
	}

	return r
}
