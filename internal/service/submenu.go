package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
)

// SubmenuService provides submenu-related operations.
type SubmenuService interface {
	GetSubmenus(ctx context.Context, menuID uuid.UUID) ([]model.Submenu, error)
	GetSubmenu(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error)
	CreateSubmenu(ctx context.Context, menuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error)
	UpdateSubmenu(ctx context.Context, menuID, submenuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error)
	DeleteSubmenu(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error)
}

// SubmenuServiceImpl implements SubmenuService.
type SubmenuServiceImpl struct {
	repo        repository.SubmenuRepositoryInterface
	cache       *CacheService
	invalidator Dispatcher
}

// NewSubmenuService creates a new submenu service.
func NewSubmenuService(repo repository.SubmenuRepositoryInterface, cache *CacheService, invalidator Dispatcher) SubmenuService {
	return &SubmenuServiceImpl{
		repo:        repo,
		cache:       cache,
		invalidator: invalidator,
	}
}

func (s *SubmenuServiceImpl) GetSubmenus(ctx context.Context, menuID uuid.UUID) ([]model.Submenu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return readThrough(ctx, s.cache, SubmenusListKey(menuID), func() ([]model.Submenu, error) {
		return s.repo.List(ctx, menuID)
	})
}

func (s *SubmenuServiceImpl) GetSubmenu(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return readThrough(ctx, s.cache, SubmenuKey(menuID, submenuID), func() (*model.Submenu, error) {
		return s.repo.Get(ctx, menuID, submenuID)
	})
}

func (s *SubmenuServiceImpl) CreateSubmenu(ctx context.Context, menuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	sub, err := s.repo.Create(ctx, menuID, input)
	if err != nil {
		return nil, err
	}
	s.invalidator.Dispatch(Invalidation{Label: "submenu.create", Set: RelatedKeys(SubmenuScope(menuID, sub.ID))})
	return sub, nil
}

func (s *SubmenuServiceImpl) UpdateSubmenu(ctx context.Context, menuID, submenuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	sub, err := s.repo.Update(ctx, menuID, submenuID, input)
	if err != nil {
		return nil, err
	}
	// The parent menu embeds submenu state, so its list and detail go too.
	s.invalidator.Dispatch(Invalidation{
		Label: "submenu.update",
		Set: InvalidationSet{Keys: []string{
			MenusListKey(), MenuKey(menuID),
			SubmenusListKey(menuID), SubmenuKey(menuID, submenuID),
		}},
	})
	return sub, nil
}

func (s *SubmenuServiceImpl) DeleteSubmenu(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	sub, err := s.repo.Delete(ctx, menuID, submenuID)
	if err != nil {
		return nil, err
	}
	s.invalidator.Dispatch(Invalidation{Label: "submenu.delete", Set: RelatedKeys(SubmenuScope(menuID, submenuID))})
	return sub, nil
}
