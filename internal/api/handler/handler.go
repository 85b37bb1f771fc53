package handler

import "quickbite/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Restaurant   *RestaurantHandler
	Menu         *MenuHandler
	Availability *AvailabilityHandler
	Export       *ExportHandler
	// 📝 后续按模块扩展: Order, Review, Notification 等
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Restaurant:   NewRestaurantHandler(svc.Restaurant),
		Menu:         NewMenuHandler(svc.Menu),
		Availability: NewAvailabilityHandler(svc.Availability),
		Export:       NewExportHandler(svc.Export),
	}
}
