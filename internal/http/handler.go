package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/i18n"
	"github.com/guttosm/menu-service/internal/service"
)

// Path parameter names shared by all resource routes.
const (
	paramMenuID    = "menu_id"
	paramSubmenuID = "submenu_id"
	paramDishID    = "dish_id"
)

// MenuHandler serves the /menus resource.
type MenuHandler struct {
	menus service.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menus service.MenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// ListMenus handles GET /api/v1/menus.
//
// @Summary      List menus
// @Description  Returns every menu with its derived submenu and dish counts.
// @Tags         Menus
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Menu}
// @Failure      500 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/v1/menus [get]
func (h *MenuHandler) ListMenus(c *gin.Context) {
	menus, err := h.menus.GetMenus(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(menus)
}

// GetMenu handles GET /api/v1/menus/:menu_id.
//
// @Summary      Get menu
// @Tags         Menus
// @Produce      json
// @Param        menu_id path string true "Menu ID" format(uuid)
// @Success      200 {object} dto.SuccessResponse{data=model.Menu}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse "menu not found"
// @Router       /api/v1/menus/{menu_id} [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	menuID, ok := PathUUID(c, paramMenuID)
	if !ok {
		return
	}
	menu, err := h.menus.GetMenu(c.Request.Context(), menuID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(menu)
}

// CreateMenu handles POST /api/v1/menus.
//
// @Summary      Create menu
// @Tags         Menus
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param        X-API-Key header string false "Required when API keys are configured"
// @Param        request body dto.MenuRequest true "Menu fields"
// @Success      201 {object} dto.SuccessResponse{data=model.Menu}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /api/v1/menus [post]
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	req, ok := BuildRequest[dto.MenuRequest](c)
	if !ok {
		return
	}
	menu, err := h.menus.CreateMenu(c.Request.Context(), req.ToInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(menu)
}

// UpdateMenu handles PATCH /api/v1/menus/:menu_id.
//
// @Summary      Update menu
// @Tags         Menus
// @Accept       json
// @Produce      json
// @Param        menu_id path string true "Menu ID" format(uuid)
// @Param        X-API-Key header string false "Required when API keys are configured"
// @Param        request body dto.MenuRequest true "Menu fields"
// @Success      200 {object} dto.SuccessResponse{data=model.Menu}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse "menu not found"
// @Router       /api/v1/menus/{menu_id} [patch]
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	menuID, ok := PathUUID(c, paramMenuID)
	if !ok {
		return
	}
	req, ok := BuildRequest[dto.MenuRequest](c)
	if !ok {
		return
	}
	menu, err := h.menus.UpdateMenu(c.Request.Context(), menuID, req.ToInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(menu)
}

// DeleteMenu handles DELETE /api/v1/menus/:menu_id and returns the deleted menu.
//
// @Summary      Delete menu
// @Description  Deletes the menu together with its submenus and dishes.
// @Tags         Menus
// @Produce      json
// @Param        menu_id path string true "Menu ID" format(uuid)
// @Param        X-API-Key header string false "Required when API keys are configured"
// @Success      200 {object} dto.SuccessResponse{data=model.Menu}
// @Failure      404 {object} dto.ErrorResponse "menu not found"
// @Router       /api/v1/menus/{menu_id} [delete]
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	menuID, ok := PathUUID(c, paramMenuID)
	if !ok {
		return
	}
	menu, err := h.menus.DeleteMenu(c.Request.Context(), menuID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(menu)
}

// NoRoute answers unknown paths with the standard not-found envelope.
func NoRoute(c *gin.Context) {
	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
}
