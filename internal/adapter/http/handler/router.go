package handler

import (
	"time"

	"smartpay-rewards/internal/adapter/http/middleware"
	redisStore "smartpay-rewards/internal/adapter/storage/redis"
	"smartpay-rewards/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	ProgramSvc     ports.ProgramService
	IssuanceSvc    ports.IssuanceService
	RedemptionSvc  ports.RedemptionService
	StatsSvc       ports.StatsService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Registry       *prometheus.Registry // nil = no /metrics endpoint
	ServiceName    string
	AllowedOrigins []string // empty = allow all
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	// Global middleware
	r.Use(otelgin.Middleware(deps.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(corsPolicy(deps.AllowedOrigins))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	if deps.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(deps.Registry).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// Deep health check: pings PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

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

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/challenge", rl("auth_challenge"), authHandler.Challenge)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	programHandler := NewProgramHandler(deps.ProgramSvc)
	program := v1.Group("/program", jwtAuth)
	{
		program.GET("", rl("reads"), programHandler.Get)
		program.POST("/initialize", rl("program_admin"), programHandler.Initialize)
		program.PUT("/reward-rate", rl("program_admin"), programHandler.UpdateRewardRate)
	}

	rewardsHandler := NewRewardsHandler(deps.IssuanceSvc, deps.RedemptionSvc, deps.StatsSvc)
	rewards := v1.Group("/rewards", jwtAuth)
	{
		rewards.POST("/mint", rl("rewards_mint"), rewardsHandler.Mint)
		rewards.POST("/redeem", rl("rewards_redeem"), rewardsHandler.Redeem)
		rewards.GET("/transactions/:transaction_id", rl("reads"), rewardsHandler.GetTransaction)
	}

	userHandler := NewUserHandler(deps.StatsSvc)
	users := v1.Group("/users", jwtAuth)
	{
		users.GET("/me/stats", rl("reads"), userHandler.MyStats)
		users.GET("/me/events", rl("reads"), userHandler.MyEvents)
		users.GET("/:user/stats", rl("reads"), userHandler.Stats)
	}

	return r
}

func corsPolicy(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID, "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
