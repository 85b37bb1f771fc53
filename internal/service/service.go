package service

import (
	"time"

	"go.uber.org/zap"

	"quickbite/backend/config"
	"quickbite/backend/internal/repository"
	"quickbite/backend/pkg/jwt"
	"quickbite/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Restaurant   RestaurantService
	Menu         MenuService
	Availability AvailabilityService
	Export       ExportService
	// 📝 后续按模块扩展: Order, Review, Notification 等
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	loc *time.Location,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Restaurant:   NewRestaurantService(repo, logger),
		Menu:         NewMenuService(repo, logger),
		Availability: NewAvailabilityService(repo, loc, logger),
		Export:       NewExportService(repo, logger),
	}
}
