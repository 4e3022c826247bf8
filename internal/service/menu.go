package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// MenuService provides menu-related operations.
type MenuService interface {
	GetMenus(ctx context.Context) ([]model.Menu, error)
	GetMenu(ctx context.Context, menuID uuid.UUID) (*model.Menu, error)
	CreateMenu(ctx context.Context, input model.MenuInput) (*model.Menu, error)
	UpdateMenu(ctx context.Context, menuID uuid.UUID, input model.MenuInput) (*model.Menu, error)
	DeleteMenu(ctx context.Context, menuID uuid.UUID) (*model.Menu, error)
}

// MenuServiceImpl implements MenuService.
type MenuServiceImpl struct {
	repo        repository.MenuRepositoryInterface
	cache       *CacheService
	invalidator Dispatcher
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepositoryInterface, cache *CacheService, invalidator Dispatcher) MenuService {
	return &MenuServiceImpl{
		repo:        repo,
		cache:       cache,
		invalidator: invalidator,
	}
}

func (s *MenuServiceImpl) GetMenus(ctx context.Context) ([]model.Menu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return readThrough(ctx, s.cache, MenusListKey(), func() ([]model.Menu, error) {
		return s.repo.List(ctx)
	})
}

func (s *MenuServiceImpl) GetMenu(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return readThrough(ctx, s.cache, MenuKey(menuID), func() (*model.Menu, error) {
		return s.repo.Get(ctx, menuID)
	})
}

func (s *MenuServiceImpl) CreateMenu(ctx context.Context, input model.MenuInput) (*model.Menu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	m, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.invalidator.Dispatch(Invalidation{Label: "menu.create", Set: RelatedKeys(MenuScope(m.ID))})
	return m, nil
}

// UpdateMenu changes only the title and description, so the derived counts
// cached elsewhere stay valid and only the list and detail are evicted.
func (s *MenuServiceImpl) UpdateMenu(ctx context.Context, menuID uuid.UUID, input model.MenuInput) (*model.Menu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	m, err := s.repo.Update(ctx, menuID, input)
	if err != nil {
		return nil, err
	}
	s.invalidator.Dispatch(Invalidation{
		Label: "menu.update",
		Set:   InvalidationSet{Keys: []string{MenusListKey(), MenuKey(menuID)}},
	})
	return m, nil
}

func (s *MenuServiceImpl) DeleteMenu(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	m, err := s.repo.Delete(ctx, menuID)
	if err != nil {
		return nil, err
	}
	s.invalidator.Dispatch(Invalidation{Label: "menu.delete", Set: RelatedKeys(MenuScope(menuID))})
	return m, nil
}
