package handler

import (
	"confidential-ledger/internal/adapter/http/middleware"
	redisStore "confidential-ledger/internal/adapter/storage/redis"
	"confidential-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	AccSvc         ports.AccumulatorService
	CapSvc         ports.CapabilityService
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
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

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	accHandler := NewAccumulatorHandler(deps.AccSvc)
	capHandler := NewCapabilityHandler(deps.CapSvc)
	reportingHandler := NewReportingHandler(deps.ReportingSvc)

	contributions := v1.Group("/contributions", jwtAuth)
	{
		contributions.POST("", rl("contributions"), accHandler.SubmitContribution)
	}

	totals := v1.Group("/totals", jwtAuth)
	{
		totals.GET("/me", rl("totals"), accHandler.GetMyTotalHandle)
		totals.GET("/:id", rl("totals"), accHandler.GetTotalHandleOf)
		totals.POST("/share", rl("share"), capHandler.ShareTotal)
		totals.POST("/publish", rl("publish"), capHandler.MakeTotalPublic)
	}

	decrypt := v1.Group("/decrypt", jwtAuth)
	{
		decrypt.POST("", rl("decrypt"), capHandler.Decrypt)
	}

	handles := v1.Group("/handles", jwtAuth)
	{
		handles.GET("/:handle/grants", rl("reporting"), reportingHandler.ListGrants)
	}

	events := v1.Group("/events", jwtAuth)
	{
		events.GET("", rl("reporting"), reportingHandler.ListEvents)
	}

	return r
}
