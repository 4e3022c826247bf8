package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/service"
)

// SubmenuHandler serves /menus/:menu_id/submenus.
type SubmenuHandler struct {
	submenus service.SubmenuService
}

// NewSubmenuHandler creates a new SubmenuHandler.
func NewSubmenuHandler(submenus service.SubmenuService) *SubmenuHandler {
	return &SubmenuHandler{submenus: submenus}
}

// ListSubmenus handles GET /api/v1/menus/:menu_id/submenus.
//
// @Summary      List submenus
// @Tags         Submenus
// @Produce      json
// @Param        menu_id path string true "Menu ID" format(uuid)
// @Success      200 {object} dto.SuccessResponse{data=[]model.Submenu}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/v1/menus/{menu_id}/submenus [get]
func (h *SubmenuHandler) ListSubmenus(c *gin.Context) {
	menuID, ok := PathUUID(c, paramMenuID)
	if !ok {
		return
	}
	subs, err := h.submenus.GetSubmenus(c.Request.Context(), menuID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(subs)
}

// GetSubmenu handles GET /api/v1/menus/:menu_id/submenus/:submenu_id.
//
// @Summary      Get submenu
// @Tags         Submenus
// @Produce      json
// @Param        menu_id    path string true "Menu ID" format(uuid)
// @Param        submenu_id path string true "Submenu ID" format(uuid)
// @Success      200 {object} dto.SuccessResponse{data=model.Submenu}
// @Failure      404 {object} dto.ErrorResponse "submenu not found"
// @Router       /api/v1/menus/{menu_id}/submenus/{submenu_id} [get]
func (h *SubmenuHandler) GetSubmenu(c *gin.Context) {
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	sub, err := h.submenus.GetSubmenu(c.Request.Context(), menuID, submenuID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(sub)
}

// CreateSubmenu handles POST /api/v1/menus/:menu_id/submenus.
//
// @Summary      Create submenu
// @Tags         Submenus
// @Accept       json
// @Produce      json
// @Param        menu_id path string true "Menu ID" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param        request body dto.SubmenuRequest true "Submenu fields"
// @Success      201 {object} dto.SuccessResponse{data=model.Submenu}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse "menu not found"
// @Router       /api/v1/menus/{menu_id}/submenus [post]
func (h *SubmenuHandler) CreateSubmenu(c *gin.Context) {
	menuID, ok := PathUUID(c, paramMenuID)
	if !ok {
		return
	}
	req, ok := BuildRequest[dto.SubmenuRequest](c)
	if !ok {
		return
	}
	sub, err := h.submenus.CreateSubmenu(c.Request.Context(), menuID, req.ToInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(sub)
}

// UpdateSubmenu handles PATCH /api/v1/menus/:menu_id/submenus/:submenu_id.
//
// @Summary      Update submenu
// @Tags         Submenus
// @Accept       json
// @Produce      json
// @Param        menu_id    path string true "Menu ID" format(uuid)
// @Param        submenu_id path string true "Submenu ID" format(uuid)
// @Param        request body dto.SubmenuRequest true "Submenu fields"
// @Success      200 {object} dto.SuccessResponse{data=model.Submenu}
// @Failure      404 {object} dto.ErrorResponse "submenu not found"
// @Router       /api/v1/menus/{menu_id}/submenus/{submenu_id} [patch]
func (h *SubmenuHandler) UpdateSubmenu(c *gin.Context) {
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	req, ok := BuildRequest[dto.SubmenuRequest](c)
	if !ok {
		return
	}
	sub, err := h.submenus.UpdateSubmenu(c.Request.Context(), menuID, submenuID, req.ToInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(sub)
}

// DeleteSubmenu handles DELETE /api/v1/menus/:menu_id/submenus/:submenu_id.
//
// @Summary      Delete submenu
// @Tags         Submenus
// @Produce      json
// @Param        menu_id    path string true "Menu ID" format(uuid)
// @Param        submenu_id path string true "Submenu ID" format(uuid)
// @Success      200 {object} dto.SuccessResponse{data=model.Submenu}
// @Failure      404 {object} dto.ErrorResponse "submenu not found"
// @Router       /api/v1/menus/{menu_id}/submenus/{submenu_id} [delete]
func (h *SubmenuHandler) DeleteSubmenu(c *gin.Context) {
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	sub, err := h.submenus.DeleteSubmenu(c.Request.Context(), menuID, submenuID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(sub)
}
