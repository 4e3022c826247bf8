package service

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	menusListKey  = "get_menus"
	apiPathPrefix = "/api/v1/menus"
)

// MenusListKey is the key of the cached menu list.
func MenusListKey() string { return menusListKey }

// MenuKey is the key of a cached menu detail. It equals the menu's REST path.
func MenuKey(menuID uuid.UUID) string {
	return fmt.Sprintf("%s/%s", apiPathPrefix, menuID)
}

// SubmenusListKey is the key of the cached submenu list of a menu.
func SubmenusListKey(menuID uuid.UUID) string {
	return fmt.Sprintf("get_submenus:%s", menuID)
}

// SubmenuKey is the key of a cached submenu detail.
func SubmenuKey(menuID, submenuID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/submenus/%s", apiPathPrefix, menuID, submenuID)
}

// DishesListKey is the key of the cached dish list of a submenu.
func DishesListKey(menuID, submenuID uuid.UUID) string {
	return fmt.Sprintf("get_dishes:%s:%s", menuID, submenuID)
}

// DishKey is the key of a cached dish detail.
func DishKey(menuID, submenuID, dishID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/submenus/%s/dishes/%s", apiPathPrefix, menuID, submenuID, dishID)
}

// DiscountKey is the key of a dish's price override. Overrides are written by
// an external process and are never invalidated by entity writes.
func DiscountKey(dishID uuid.UUID) string {
	return fmt.Sprintf("dish:%s", dishID)
}

// ScopeKind identifies the hierarchy level a mutation happened at.
type ScopeKind int

const (
	ScopeMenu ScopeKind = iota + 1
	ScopeSubmenu
	ScopeDish
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeMenu:
		return "menu"
	case ScopeSubmenu:
		return "submenu"
	case ScopeDish:
		return "dish"
	default:
		return "unknown"
	}
}

// Scope carries the minimal ids identifying a mutated entity. Build it with
// MenuScope, SubmenuScope or DishScope.
type Scope struct {
	Kind      ScopeKind
	MenuID    uuid.UUID
	SubmenuID uuid.UUID
	// DishID is uuid.Nil when the dish detail key should not be touched.
	DishID uuid.UUID
}

func MenuScope(menuID uuid.UUID) Scope {
	return Scope{Kind: ScopeMenu, MenuID: menuID}
}

func SubmenuScope(menuID, submenuID uuid.UUID) Scope {
	return Scope{Kind: ScopeSubmenu, MenuID: menuID, SubmenuID: submenuID}
}

func DishScope(menuID, submenuID, dishID uuid.UUID) Scope {
	return Scope{Kind: ScopeDish, MenuID: menuID, SubmenuID: submenuID, DishID: dishID}
}

func (s Scope) String() string {
	switch s.Kind {
	case ScopeMenu:
		return fmt.Sprintf("menu(%s)", s.MenuID)
	case ScopeSubmenu:
		return fmt.Sprintf("submenu(%s/%s)", s.MenuID, s.SubmenuID)
	case ScopeDish:
		return fmt.Sprintf("dish(%s/%s/%s)", s.MenuID, s.SubmenuID, s.DishID)
	default:
		return "unknown"
	}
}

// InvalidationSet lists the literal keys and glob patterns to evict.
type InvalidationSet struct {
	Keys     []string
	Patterns []string
}

// Empty reports whether the set evicts nothing.
func (s InvalidationSet) Empty() bool {
	return len(s.Keys) == 0 && len(s.Patterns) == 0
}

// RelatedKeys maps a mutation scope to every cache entry whose content may
// depend on the mutated entity. Each ancestor carrying a derived count is
// included, plus every descendant namespace for menu and submenu scopes.
func RelatedKeys(scope Scope) InvalidationSet {
	switch scope.Kind {
	case ScopeMenu:
		return InvalidationSet{
			Keys: []string{
				MenusListKey(),
				MenuKey(scope.MenuID),
				SubmenusListKey(scope.MenuID),
			},
			Patterns: []string{
				MenuKey(scope.MenuID) + "/*",
				fmt.Sprintf("get_dishes:%s:*", scope.MenuID),
			},
		}
	case ScopeSubmenu:
		return InvalidationSet{
			Keys: []string{
				MenusListKey(),
				MenuKey(scope.MenuID),
				SubmenusListKey(scope.MenuID),
				SubmenuKey(scope.MenuID, scope.SubmenuID),
				DishesListKey(scope.MenuID, scope.SubmenuID),
			},
			Patterns: []string{
				SubmenuKey(scope.MenuID, scope.SubmenuID) + "/*",
			},
		}
	case ScopeDish:
		keys := []string{
			MenusListKey(),
			MenuKey(scope.MenuID),
			SubmenusListKey(scope.MenuID),
			SubmenuKey(scope.MenuID, scope.SubmenuID),
			DishesListKey(scope.MenuID, scope.SubmenuID),
		}
		if scope.DishID != uuid.Nil {
			keys = append(keys, DishKey(scope.MenuID, scope.SubmenuID, scope.DishID))
		}
		return InvalidationSet{Keys: keys}
	default:
		return InvalidationSet{}
	}
}
