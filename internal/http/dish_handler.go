package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/i18n"
	"github.com/guttosm/menu-service/internal/service"
)

// DishHandler serves /menus/:menu_id/submenus/:submenu_id/dishes.
type DishHandler struct {
	dishes service.DishService
}

// NewDishHandler creates a new DishHandler.
func NewDishHandler(dishes service.DishService) *DishHandler {
	return &DishHandler{dishes: dishes}
}

// ListDishes handles GET .../dishes.
//
// @Summary      List dishes
// @Description  Prices reflect any active discount.
// @Tags         Dishes
// @Produce      json
// @Param        menu_id    path string true "Menu ID" format(uuid)
// @Param        submenu_id path string true "Submenu ID" format(uuid)
// @Success      200 {object} dto.SuccessResponse{data=[]model.Dish}
// @Router       /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes [get]
func (h *DishHandler) ListDishes(c *gin.Context) {
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	dishes, err := h.dishes.GetDishes(c.Request.Context(), menuID, submenuID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dishes)
}

// GetDish handles GET .../dishes/:dish_id.
//
// @Summary      Get dish
// @Description  The price reflects any active discount.
// @Tags         Dishes
// @Produce      json
// @Param        menu_id    path string true "Menu ID" format(uuid)
// @Param        submenu_id path string true "Submenu ID" format(uuid)
// @Param        dish_id    path string true "Dish ID" format(uuid)
// @Success      200 {object} dto.SuccessResponse{data=model.Dish}
// @Failure      404 {object} dto.ErrorResponse "dish not found"
// @Router       /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [get]
func (h *DishHandler) GetDish(c *gin.Context) {
	menuID, submenuID, dishID, ok := dishPath(c)
	if !ok {
		return
	}
	dish, err := h.dishes.GetDish(c.Request.Context(), menuID, submenuID, dishID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dish)
}

// CreateDish handles POST .../dishes.
//
// @Summary      Create dish
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        menu_id    path string true "Menu ID" format(uuid)
// @Param        submenu_id path string true "Submenu ID" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param        request body dto.DishRequest true "Dish fields"
// @Success      201 {object} dto.SuccessResponse{data=model.Dish}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse "submenu not found"
// @Router       /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes [post]
func (h *DishHandler) CreateDish(c *gin.Context) {
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	input, ok := bindDish(c)
	if !ok {
		return
	}
	dish, err := h.dishes.CreateDish(c.Request.Context(), menuID, submenuID, input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(dish)
}

// UpdateDish handles PATCH .../dishes/:dish_id.
//
// @Summary      Update dish
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        menu_id    path string true "Menu ID" format(uuid)
// @Param        submenu_id path string true "Submenu ID" format(uuid)
// @Param        dish_id    path string true "Dish ID" format(uuid)
// @Param        request body dto.DishRequest true "Dish fields"
// @Success      200 {object} dto.SuccessResponse{data=model.Dish}
// @Failure      404 {object} dto.ErrorResponse "dish not found"
// @Router       /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [patch]
func (h *DishHandler) UpdateDish(c *gin.Context) {
	menuID, submenuID, dishID, ok := dishPath(c)
	if !ok {
		return
	}
	input, ok := bindDish(c)
	if !ok {
		return
	}
	dish, err := h.dishes.UpdateDish(c.Request.Context(), menuID, submenuID, dishID, input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dish)
}

// DeleteDish handles DELETE .../dishes/:dish_id.
//
// @Summary      Delete dish
// @Tags         Dishes
// @Produce      json
// @Param        menu_id    path string true "Menu ID" format(uuid)
// @Param        submenu_id path string true "Submenu ID" format(uuid)
// @Param        dish_id    path string true "Dish ID" format(uuid)
// @Success      200 {object} dto.SuccessResponse{data=model.Dish}
// @Failure      404 {object} dto.ErrorResponse "dish not found"
// @Router       /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [delete]
func (h *DishHandler) DeleteDish(c *gin.Context) {
	menuID, submenuID, dishID, ok := dishPath(c)
	if !ok {
		return
	}
	dish, err := h.dishes.DeleteDish(c.Request.Context(), menuID, submenuID, dishID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dish)
}

func bindDish(c *gin.Context) (model.DishInput, bool) {
	req, ok := BuildRequest[dto.DishRequest](c)
	if !ok {
		return model.DishInput{}, false
	}
	input, err := req.ToInput()
	if err != nil {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{"price": "price"}, err)
		return model.DishInput{}, false
	}
	return input, true
}

func submenuPath(c *gin.Context) (menuID, submenuID uuid.UUID, ok bool) {
	if menuID, ok = PathUUID(c, paramMenuID); !ok {
		return
	}
	submenuID, ok = PathUUID(c, paramSubmenuID)
	return
}

func dishPath(c *gin.Context) (menuID, submenuID, dishID uuid.UUID, ok bool) {
	if menuID, submenuID, ok = submenuPath(c); !ok {
		return
	}
	dishID, ok = PathUUID(c, paramDishID)
	return
}
