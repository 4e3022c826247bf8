// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
)

// MenuRepositoryInterface defines the interface for menu repository operations.
// Lookups of a missing id return a *model.NotFoundError for EntityMenu.
type MenuRepositoryInterface interface {
	List(ctx context.Context) ([]model.Menu, error)
	Get(ctx context.Context, menuID uuid.UUID) (*model.Menu, error)
	Create(ctx context.Context, input model.MenuInput) (*model.Menu, error)
	Update(ctx context.Context, menuID uuid.UUID, input model.MenuInput) (*model.Menu, error)
	// Delete removes the menu with its submenus and dishes and returns the
	// menu as it was before removal.
	Delete(ctx context.Context, menuID uuid.UUID) (*model.Menu, error)
}

// SubmenuRepositoryInterface defines the interface for submenu repository
// operations. Every call is scoped to the owning menu.
type SubmenuRepositoryInterface interface {
	List(ctx context.Context, menuID uuid.UUID) ([]model.Submenu, error)
	Get(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error)
	// Create returns a menu not-found error when menuID does not exist.
	Create(ctx context.Context, menuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error)
	Update(ctx context.Context, menuID, submenuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error)
	Delete(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error)
}

// DishRepositoryInterface defines the interface for dish repository
// operations. Every call is scoped to the owning menu and submenu.
type DishRepositoryInterface interface {
	List(ctx context.Context, menuID, submenuID uuid.UUID) ([]model.Dish, error)
	Get(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error)
	// Create returns a submenu not-found error when the submenu does not
	// exist under menuID.
	Create(ctx context.Context, menuID, submenuID uuid.UUID, input model.DishInput) (*model.Dish, error)
	Update(ctx context.Context, menuID, submenuID, dishID uuid.UUID, input model.DishInput) (*model.Dish, error)
	Delete(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
