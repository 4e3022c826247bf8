package app

import (
	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/service"
)

// ServiceComponents holds the entity services and the background
// invalidator they share.
type ServiceComponents struct {
	Menus       service.MenuService
	Submenus    service.SubmenuService
	Dishes      service.DishService
	Discounts   *service.DiscountService
	Invalidator *service.Invalidator
}

// InitializeServices wires the entity services over the repositories and
// the cache store.
func InitializeServices(db *DatabaseComponents, store cache.Store, cfg config.Config) *ServiceComponents {
	cacheService := service.NewCacheService(store, cfg.Cache.TTL)
	invalidator := service.NewInvalidator(cacheService, invalidatorConfig(cfg.Invalidation))
	discounts := service.NewDiscountService(store)

	return &ServiceComponents{
		Menus:       service.NewMenuService(db.Menus, cacheService, invalidator),
		Submenus:    service.NewSubmenuService(db.Submenus, cacheService, invalidator),
		Dishes:      service.NewDishService(db.Dishes, cacheService, discounts, invalidator),
		Discounts:   discounts,
		Invalidator: invalidator,
	}
}

func invalidatorConfig(cfg config.InvalidationConfig) service.InvalidatorConfig {
	out := service.DefaultInvalidatorConfig()
	if cfg.Workers > 0 {
		out.Workers = cfg.Workers
	}
	if cfg.QueueSize > 0 {
		out.QueueSize = cfg.QueueSize
	}
	out.MaxRetries = cfg.MaxRetries
	if cfg.AttemptTimeout > 0 {
		out.AttemptTimeout = cfg.AttemptTimeout
	}
	return out
}
