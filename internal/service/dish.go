package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
)

// DishService provides dish-related operations. Every read passes through
// the discount overlay, whether the dish came from the cache or the store.
type DishService interface {
	GetDishes(ctx context.Context, menuID, submenuID uuid.UUID) ([]model.Dish, error)
	GetDish(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error)
	CreateDish(ctx context.Context, menuID, submenuID uuid.UUID, input model.DishInput) (*model.Dish, error)
	UpdateDish(ctx context.Context, menuID, submenuID, dishID uuid.UUID, input model.DishInput) (*model.Dish, error)
	DeleteDish(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error)
}

// DishServiceImpl implements DishService.
type DishServiceImpl struct {
	repo        repository.DishRepositoryInterface
	cache       *CacheService
	discounts   *DiscountService
	invalidator Dispatcher
}

// NewDishService creates a new dish service.
func NewDishService(
	repo repository.DishRepositoryInterface,
	cache *CacheService,
	discounts *DiscountService,
	invalidator Dispatcher,
) DishService {
	return &DishServiceImpl{
		repo:        repo,
		cache:       cache,
		discounts:   discounts,
		invalidator: invalidator,
	}
}

func (s *DishServiceImpl) GetDishes(ctx context.Context, menuID, submenuID uuid.UUID) ([]model.Dish, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dishes, err := readThrough(ctx, s.cache, DishesListKey(menuID, submenuID), func() ([]model.Dish, error) {
		return s.repo.List(ctx, menuID, submenuID)
	})
	if err != nil {
		return nil, err
	}
	if err := s.discounts.ApplyAll(ctx, dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *DishServiceImpl) GetDish(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dish, err := readThrough(ctx, s.cache, DishKey(menuID, submenuID, dishID), func() (*model.Dish, error) {
		return s.repo.Get(ctx, menuID, submenuID, dishID)
	})
	if err != nil {
		return nil, err
	}
	if err := s.discounts.Apply(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishServiceImpl) CreateDish(ctx context.Context, menuID, submenuID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dish, err := s.repo.Create(ctx, menuID, submenuID, input)
	if err != nil {
		return nil, err
	}
	s.invalidator.Dispatch(Invalidation{Label: "dish.create", Set: RelatedKeys(DishScope(menuID, submenuID, dish.ID))})
	return dish, nil
}

func (s *DishServiceImpl) UpdateDish(ctx context.Context, menuID, submenuID, dishID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dish, err := s.repo.Update(ctx, menuID, submenuID, dishID, input)
	if err != nil {
		return nil, err
	}
	s.invalidator.Dispatch(Invalidation{
		Label: "dish.update",
		Set:   InvalidationSet{Keys: []string{DishesListKey(menuID, submenuID), DishKey(menuID, submenuID, dishID)}},
	})
	return dish, nil
}

func (s *DishServiceImpl) DeleteDish(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	dish, err := s.repo.Delete(ctx, menuID, submenuID, dishID)
	if err != nil {
		return nil, err
	}
	s.invalidator.Dispatch(Invalidation{Label: "dish.delete", Set: RelatedKeys(DishScope(menuID, submenuID, dishID))})
	return dish, nil
}
