package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/metrics"
	"github.com/guttosm/menu-service/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// APIBasePath prefixes every resource route. Cache keys embed it.
const APIBasePath = "/api/v1"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	APIKeys        []string
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	// IdempotencyStore enables Idempotency-Key replay on creates when set.
	IdempotencyStore cache.Store
	IdempotencyTTL   time.Duration
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultRequestTimeout,
		IdempotencyTTL: middleware.DefaultIdempotencyTTL,
	}
}

// Router is the configured engine plus the resources it must release.
type Router struct {
	*gin.Engine
	limiter *middleware.ShardedRateLimiter
}

// Close stops background work owned by the router.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
}

// NewRouter creates and configures the Gin router for the menu service.
func NewRouter(routes RouteGroup, healthHandler *HealthHandler, cfg RouterConfig) *Router {
	dto.RegisterValidators()

	router := &Router{Engine: gin.New()}
	router.configureGlobalMiddleware(&cfg)
	registerInfrastructureRoutes(router.Engine, healthHandler, &cfg)

	api := router.Group(APIBasePath)
	configureAPIMiddleware(api, &cfg)
	if routes != nil {
		routes.RegisterRoutes(api)
	}

	router.NoRoute(NoRoute)
	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func (r *Router) configureGlobalMiddleware(cfg *RouterConfig) {
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.RequestLogger("/healthz", "/readyz", "/metrics"),
		middleware.CORS(cfg.CORSOrigins),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
	)

	if cfg.RateLimit > 0 {
		r.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.Use(r.limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group. The error
// handler sits inside the timeout so a late deadline is reported once.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(
		middleware.Timeout(cfg.RequestTimeout),
		middleware.ErrorHandler(),
		middleware.APIKeyAuth(cfg.APIKeys),
	)
	if cfg.IdempotencyStore != nil {
		api.Use(middleware.Idempotency(cfg.IdempotencyStore, cfg.IdempotencyTTL))
	}
}
