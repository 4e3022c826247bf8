package app

import (
	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/http"
)

// Readiness check names.
const (
	CheckDatabase = "database"
	CheckCache    = "cache"
)

// InitializeRouter builds handlers, health checks and the router.
func InitializeRouter(svc *ServiceComponents, db *DatabaseComponents, store cache.Store, cfg config.ServerConfig) *http.Router {
	routes := http.NewMenuRoutes(
		http.NewMenuHandler(svc.Menus),
		http.NewSubmenuHandler(svc.Submenus),
		http.NewDishHandler(svc.Dishes),
	)

	health := http.NewHealthHandler()
	if db.Pinger != nil {
		health.RegisterChecker(CheckDatabase, db.Pinger)
	}
	health.RegisterChecker(CheckCache, store)
	for _, name := range []string{BreakerMenus, BreakerSubmenus, BreakerDishes} {
		if cb, ok := db.Breakers[name]; ok {
			health.RegisterCircuitBreaker(name, cb)
		}
	}

	return http.NewRouter(routes, health, RouterConfig(cfg, store))
}

// RouterConfig maps server settings onto the router. Idempotent replay
// shares the cache store.
func RouterConfig(cfg config.ServerConfig, store cache.Store) http.RouterConfig {
	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.RateLimit
	if cfg.RateWindow > 0 {
		routerCfg.RateWindow = cfg.RateWindow
	}
	if cfg.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.RequestTimeout
	}
	if cfg.IdempotencyTTL > 0 {
		routerCfg.IdempotencyTTL = cfg.IdempotencyTTL
	}
	routerCfg.APIKeys = cfg.APIKeys
	routerCfg.CORSOrigins = cfg.CORSOrigins
	routerCfg.SwaggerUser = cfg.SwaggerUser
	routerCfg.SwaggerPass = cfg.SwaggerPass
	routerCfg.IdempotencyStore = store
	return routerCfg
}
