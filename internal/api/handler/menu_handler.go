package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"quickbite/backend/internal/dto"
	"quickbite/backend/internal/service"
	apperrors "quickbite/backend/pkg/errors"
	"quickbite/backend/pkg/response"
)

// MenuHandler 菜单模块 HTTP 处理器
type MenuHandler struct {
	menuSvc service.MenuService
}

// NewMenuHandler 创建 MenuHandler
func NewMenuHandler(menuSvc service.MenuService) *MenuHandler {
	return &MenuHandler{menuSvc: menuSvc}
}

// ListMenuItems 获取餐厅菜单（公开）
// GET /api/v1/restaurants/:id/menu
func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	items, err := h.menuSvc.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// CreateMenuItem 新增菜单项（仅店主本人）
// POST /api/v1/restaurants/:id/menu
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	item, err := h.menuSvc.Create(c.Request.Context(), restaurantID, &req, callerID)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.Created(c, item)
}

// UpdateMenuItem 更新菜单项（仅店主本人）
// PUT /api/v1/restaurants/:id/menu/:item_id
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	restaurantID := c.Param("id")
	itemID := c.Param("item_id")
	if restaurantID == "" || itemID == "" {
		response.BadRequest(c, 10001, "餐厅ID与菜单项ID不能为空")
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	item, err := h.menuSvc.Update(c.Request.Context(), restaurantID, itemID, &req, callerID)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, item)
}

// DeleteMenuItem 删除菜单项（仅店主本人）
// DELETE /api/v1/restaurants/:id/menu/:item_id
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	restaurantID := c.Param("id")
	itemID := c.Param("item_id")
	if restaurantID == "" || itemID == "" {
		response.BadRequest(c, 10001, "餐厅ID与菜单项ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.menuSvc.Delete(c.Request.Context(), restaurantID, itemID, callerID); err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *MenuHandler) handleMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		response.NotFound(c, 13001, "餐厅不存在")
	case errors.Is(err, service.ErrMenuItemNotFound):
		response.NotFound(c, 15001, "菜单项不存在")
	case errors.Is(err, apperrors.ErrNotOwner):
		response.Forbidden(c, 13003, "无权操作该餐厅")
	default:
		response.InternalError(c)
	}
}
