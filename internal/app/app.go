// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/menu-service/config"
	_ "github.com/guttosm/menu-service/docs" // swagger docs
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App owns every long-lived component of a running service.
type App struct {
	Config   config.Config
	Database *DatabaseComponents
	Cache    cache.Store
	Services *ServiceComponents
	Router   *http.Router
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	db, err := InitializeDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	store, err := InitializeCache(cfg.Cache)
	if err != nil {
		_ = db.Close(ctx)
		return nil, err
	}

	svc := InitializeServices(db, store, cfg)
	router := InitializeRouter(svc, db, store, cfg.Server)

	return &App{
		Config:   cfg,
		Database: db,
		Cache:    store,
		Services: svc,
		Router:   router,
	}, nil
}

// Run serves HTTP until ctx ends or a shutdown signal arrives, then
// releases every component.
func (a *App) Run(ctx context.Context) error {
	server := NewServer(a.Router, a.Config.Server.Port, a.Config.Server.ShutdownTimeout)
	runErr := server.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), server.shutdownTimeout)
	defer cancel()
	return errors.Join(runErr, a.Close(closeCtx))
}

// Close stops background work and closes the stores. Pending invalidations
// are drained before the cache is closed.
func (a *App) Close(ctx context.Context) error {
	var errs []error

	if a.Services != nil && a.Services.Invalidator != nil {
		if err := a.Services.Invalidator.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop invalidator: %w", err))
		}
		stats := a.Services.Invalidator.Stats()
		log.Info().
			Int64("queued", stats.Queued).
			Int64("succeeded", stats.Succeeded).
			Int64("failed", stats.Failed).
			Int64("retried", stats.Retried).
			Msg("Invalidator stopped")
	}
	if a.Router != nil {
		a.Router.Close()
	}
	if m, ok := a.Cache.(cache.StoreWithMetrics); ok {
		stats := m.Metrics()
		log.Info().
			Int64("hits", stats.Hits).
			Int64("misses", stats.Misses).
			Int64("evictions", stats.Evictions).
			Int("size", stats.Size).
			Msg("Cache statistics")
	}
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if err := a.Database.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}

	if len(errs) == 0 {
		log.Info().Msg("Application stopped")
	}
	return errors.Join(errs...)
}
