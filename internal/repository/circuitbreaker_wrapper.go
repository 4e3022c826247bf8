package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// BreakerConfig holds circuit breaker configuration.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive failures before opening the circuit.
	FailureThreshold uint32
	// HalfOpenRequests is the number of trial requests allowed while half-open.
	HalfOpenRequests uint32
	// Timeout is the duration to wait before attempting to half-open the circuit.
	Timeout time.Duration
}

// DefaultBreakerConfig returns a default circuit breaker configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		HalfOpenRequests: 2,
		Timeout:          30 * time.Second,
	}
}

// NewBreaker creates a named circuit breaker. Not-found results and caller
// cancellation do not count as failures.
func NewBreaker(name string, cfg BreakerConfig) *gobreaker.CircuitBreaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = DefaultBreakerConfig().FailureThreshold
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, model.ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("circuit_breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
}

// execute runs fn through cb and restores its typed result.
func execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// MenuRepositoryWithCircuitBreaker wraps a menu repository with circuit breaker protection.
type MenuRepositoryWithCircuitBreaker struct {
	repo MenuRepositoryInterface
	cb   *gobreaker.CircuitBreaker
}

// NewMenuRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewMenuRepositoryWithCircuitBreaker(repo MenuRepositoryInterface, cb *gobreaker.CircuitBreaker) *MenuRepositoryWithCircuitBreaker {
	return &MenuRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *MenuRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Menu, error) {
	return execute(r.cb, func() ([]model.Menu, error) { return r.repo.List(ctx) })
}

func (r *MenuRepositoryWithCircuitBreaker) Get(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	return execute(r.cb, func() (*model.Menu, error) { return r.repo.Get(ctx, menuID) })
}

func (r *MenuRepositoryWithCircuitBreaker) Create(ctx context.Context, input model.MenuInput) (*model.Menu, error) {
	return execute(r.cb, func() (*model.Menu, error) { return r.repo.Create(ctx, input) })
}

func (r *MenuRepositoryWithCircuitBreaker) Update(ctx context.Context, menuID uuid.UUID, input model.MenuInput) (*model.Menu, error) {
	return execute(r.cb, func() (*model.Menu, error) { return r.repo.Update(ctx, menuID, input) })
}

func (r *MenuRepositoryWithCircuitBreaker) Delete(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	return execute(r.cb, func() (*model.Menu, error) { return r.repo.Delete(ctx, menuID) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *MenuRepositoryWithCircuitBreaker) GetCircuitBreaker() *gobreaker.CircuitBreaker {
	return r.cb
}

// SubmenuRepositoryWithCircuitBreaker wraps a submenu repository with circuit breaker protection.
type SubmenuRepositoryWithCircuitBreaker struct {
	repo SubmenuRepositoryInterface
	cb   *gobreaker.CircuitBreaker
}

// NewSubmenuRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSubmenuRepositoryWithCircuitBreaker(repo SubmenuRepositoryInterface, cb *gobreaker.CircuitBreaker) *SubmenuRepositoryWithCircuitBreaker {
	return &SubmenuRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *SubmenuRepositoryWithCircuitBreaker) List(ctx context.Context, menuID uuid.UUID) ([]model.Submenu, error) {
	return execute(r.cb, func() ([]model.Submenu, error) { return r.repo.List(ctx, menuID) })
}

func (r *SubmenuRepositoryWithCircuitBreaker) Get(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	return execute(r.cb, func() (*model.Submenu, error) { return r.repo.Get(ctx, menuID, submenuID) })
}

func (r *SubmenuRepositoryWithCircuitBreaker) Create(ctx context.Context, menuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	return execute(r.cb, func() (*model.Submenu, error) { return r.repo.Create(ctx, menuID, input) })
}

func (r *SubmenuRepositoryWithCircuitBreaker) Update(ctx context.Context, menuID, submenuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	return execute(r.cb, func() (*model.Submenu, error) { return r.repo.Update(ctx, menuID, submenuID, input) })
}

func (r *SubmenuRepositoryWithCircuitBreaker) Delete(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	return execute(r.cb, func() (*model.Submenu, error) { return r.repo.Delete(ctx, menuID, submenuID) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SubmenuRepositoryWithCircuitBreaker) GetCircuitBreaker() *gobreaker.CircuitBreaker {
	return r.cb
}

// DishRepositoryWithCircuitBreaker wraps a dish repository with circuit breaker protection.
type DishRepositoryWithCircuitBreaker struct {
	repo DishRepositoryInterface
	cb   *gobreaker.CircuitBreaker
}

// NewDishRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewDishRepositoryWithCircuitBreaker(repo DishRepositoryInterface, cb *gobreaker.CircuitBreaker) *DishRepositoryWithCircuitBreaker {
	return &DishRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *DishRepositoryWithCircuitBreaker) List(ctx context.Context, menuID, submenuID uuid.UUID) ([]model.Dish, error) {
	return execute(r.cb, func() ([]model.Dish, error) { return r.repo.List(ctx, menuID, submenuID) })
}

func (r *DishRepositoryWithCircuitBreaker) Get(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	return execute(r.cb, func() (*model.Dish, error) { return r.repo.Get(ctx, menuID, submenuID, dishID) })
}

func (r *DishRepositoryWithCircuitBreaker) Create(ctx context.Context, menuID, submenuID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	return execute(r.cb, func() (*model.Dish, error) { return r.repo.Create(ctx, menuID, submenuID, input) })
}

func (r *DishRepositoryWithCircuitBreaker) Update(ctx context.Context, menuID, submenuID, dishID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	return execute(r.cb, func() (*model.Dish, error) { return r.repo.Update(ctx, menuID, submenuID, dishID, input) })
}

func (r *DishRepositoryWithCircuitBreaker) Delete(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	return execute(r.cb, func() (*model.Dish, error) { return r.repo.Delete(ctx, menuID, submenuID, dishID) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *DishRepositoryWithCircuitBreaker) GetCircuitBreaker() *gobreaker.CircuitBreaker {
	return r.cb
}
