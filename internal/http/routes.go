package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// MenuRoutes registers the menu → submenu → dish resource tree.
type MenuRoutes struct {
	menus    *MenuHandler
	submenus *SubmenuHandler
	dishes   *DishHandler
}

// NewMenuRoutes creates a new MenuRoutes instance.
func NewMenuRoutes(menus *MenuHandler, submenus *SubmenuHandler, dishes *DishHandler) *MenuRoutes {
	return &MenuRoutes{menus: menus, submenus: submenus, dishes: dishes}
}

// RegisterRoutes implements RouteGroup.
func (r *MenuRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	menus := rg.Group("/menus")
	menus.GET("", r.menus.ListMenus)
	menus.POST("", r.menus.CreateMenu)
	menus.GET("/:menu_id", r.menus.GetMenu)
	menus.PATCH("/:menu_id", r.menus.UpdateMenu)
	menus.DELETE("/:menu_id", r.menus.DeleteMenu)

	submenus := menus.Group("/:menu_id/submenus")
	submenus.GET("", r.submenus.ListSubmenus)
	submenus.POST("", r.submenus.CreateSubmenu)
	submenus.GET("/:submenu_id", r.submenus.GetSubmenu)
	submenus.PATCH("/:submenu_id", r.submenus.UpdateSubmenu)
	submenus.DELETE("/:submenu_id", r.submenus.DeleteSubmenu)

	dishes := submenus.Group("/:submenu_id/dishes")
	dishes.GET("", r.dishes.ListDishes)
	dishes.POST("", r.dishes.CreateDish)
	dishes.GET("/:dish_id", r.dishes.GetDish)
	dishes.PATCH("/:dish_id", r.dishes.UpdateDish)
	dishes.DELETE("/:dish_id", r.dishes.DeleteDish)
}
