package app

import (
	"context"
	"fmt"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// Circuit breaker names, also used as readiness keys.
const (
	BreakerMenus    = "menus"
	BreakerSubmenus = "submenus"
	BreakerDishes   = "dishes"
)

// DatabaseComponents holds the store of record and its breaker-wrapped
// repositories.
type DatabaseComponents struct {
	Menus    repository.MenuRepositoryInterface
	Submenus repository.SubmenuRepositoryInterface
	Dishes   repository.DishRepositoryInterface
	Breakers map[string]*gobreaker.CircuitBreaker
	// Pinger reports whether the database is reachable.
	Pinger interface{ Ping(context.Context) error }
	close  func(context.Context) error
}

// Close releases the database connection.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.close == nil {
		return nil
	}
	return d.close(ctx)
}

// InitializeDatabase connects to the configured driver and wraps each
// repository with its own circuit breaker.
func InitializeDatabase(ctx context.Context, cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	var (
		menus    repository.MenuRepositoryInterface
		submenus repository.SubmenuRepositoryInterface
		dishes   repository.DishRepositoryInterface
		comps    = &DatabaseComponents{}
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		pgCfg := repository.DefaultPostgresConfig(cfg.PostgresDSN())
		if cfg.MaxConns > 0 {
			pgCfg.MaxConns = cfg.MaxConns
		}
		db, err := repository.NewPostgres(ctx, pgCfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if cfg.AutoMigrate {
			if err := db.Migrate(ctx); err != nil {
				db.Close()
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		log.Info().Str("driver", cfg.Driver).Msg("Connected to PostgreSQL")

		menus = repository.NewMenuRepository(db)
		submenus = repository.NewSubmenuRepository(db)
		dishes = repository.NewDishRepository(db)
		comps.Pinger = db
		comps.close = func(context.Context) error {
			db.Close()
			return nil
		}

	case config.DriverMongoDB:
		mongoCfg := repository.DefaultMongoConfig()
		if cfg.MaxConns > 0 {
			mongoCfg.MaxPoolSize = uint64(cfg.MaxConns)
			mongoCfg.MinPoolSize = min(mongoCfg.MinPoolSize, mongoCfg.MaxPoolSize)
		}
		db, err := repository.NewMongoDBWithConfig(ctx, cfg.MongoURI, cfg.MongoDatabase, mongoCfg)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.Driver).Msg("Connected to MongoDB")

		menus = repository.NewMongoMenuRepository(db)
		submenus = repository.NewMongoSubmenuRepository(db)
		dishes = repository.NewMongoDishRepository(db)
		comps.Pinger = db
		comps.close = db.Close

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	breakerCfg := repository.BreakerConfig{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		HalfOpenRequests: cfg.CircuitBreakerHalfOpenRequests,
		Timeout:          cfg.CircuitBreakerTimeout,
	}
	wrappedMenus := repository.NewMenuRepositoryWithCircuitBreaker(menus, repository.NewBreaker(BreakerMenus, breakerCfg))
	wrappedSubmenus := repository.NewSubmenuRepositoryWithCircuitBreaker(submenus, repository.NewBreaker(BreakerSubmenus, breakerCfg))
	wrappedDishes := repository.NewDishRepositoryWithCircuitBreaker(dishes, repository.NewBreaker(BreakerDishes, breakerCfg))

	comps.Menus = wrappedMenus
	comps.Submenus = wrappedSubmenus
	comps.Dishes = wrappedDishes
	comps.Breakers = map[string]*gobreaker.CircuitBreaker{
		BreakerMenus:    wrappedMenus.GetCircuitBreaker(),
		BreakerSubmenus: wrappedSubmenus.GetCircuitBreaker(),
		BreakerDishes:   wrappedDishes.GetCircuitBreaker(),
	}
	return comps, nil
}

// MigrateDatabase applies the embedded PostgreSQL schema and returns.
func MigrateDatabase(ctx context.Context, cfg config.DatabaseConfig) error {
	if cfg.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations apply to %q only, DB_DRIVER is %q", config.DriverPostgres, cfg.Driver)
	}
	db, err := repository.NewPostgres(ctx, repository.DefaultPostgresConfig(cfg.PostgresDSN()))
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	log.Info().Msg("Migrations applied")
	return nil
}
