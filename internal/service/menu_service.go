package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"quickbite/backend/internal/dto"
	"quickbite/backend/internal/model"
	"quickbite/backend/internal/repository"
)

// ── 菜单模块业务错误 ──

var (
	ErrMenuItemNotFound = errors.New("菜单项不存在")
)

// MenuService 菜单业务接口
type MenuService interface {
	Create(ctx context.Context, restaurantID string, req *dto.CreateMenuItemRequest, callerID string) (*dto.MenuItemResponse, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]dto.MenuItemResponse, error)
	Update(ctx context.Context, restaurantID, itemID string, req *dto.UpdateMenuItemRequest, callerID string) (*dto.MenuItemResponse, error)
	Delete(ctx context.Context, restaurantID, itemID, callerID string) error
}

type menuService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMenuService 创建 MenuService 实例
func NewMenuService(repo *repository.Repository, logger *zap.Logger) MenuService {
	return &menuService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *menuService) Create(ctx context.Context, restaurantID string, req *dto.CreateMenuItemRequest, callerID string) (*dto.MenuItemResponse, error) {
	if _, err := requireRestaurantOwner(ctx, s.repo, restaurantID, callerID, s.logger); err != nil {
		return nil, err
	}

	item := &model.MenuItem{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		IsAvailable:  true,
	}

	if err := s.repo.MenuItem.Create(ctx, item); err != nil {
		s.logger.Error("创建菜单项失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	return s.toMenuItemResponse(item), nil
}

// ────────────────────── ListByRestaurant ──────────────────────

func (s *menuService) ListByRestaurant(ctx context.Context, restaurantID string) ([]dto.MenuItemResponse, error) {
	if _, err := s.repo.Restaurant.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("查询餐厅失败", zap.String("id", restaurantID), zap.Error(err))
		return nil, err
	}

	items, err := s.repo.MenuItem.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("查询菜单失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *s.toMenuItemResponse(&items[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *menuService) Update(ctx context.Context, restaurantID, itemID string, req *dto.UpdateMenuItemRequest, callerID string) (*dto.MenuItemResponse, error) {
	if _, err := requireRestaurantOwner(ctx, s.repo, restaurantID, callerID, s.logger); err != nil {
		return nil, err
	}

	item, err := s.getRestaurantItem(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.MenuItem.Update(ctx, item); err != nil {
		s.logger.Error("更新菜单项失败", zap.String("id", itemID), zap.Error(err))
		return nil, err
	}

	return s.toMenuItemResponse(item), nil
}

// ────────────────────── Delete ──────────────────────

func (s *menuService) Delete(ctx context.Context, restaurantID, itemID, callerID string) error {
	if _, err := requireRestaurantOwner(ctx, s.repo, restaurantID, callerID, s.logger); err != nil {
		return err
	}

	if _, err := s.getRestaurantItem(ctx, restaurantID, itemID); err != nil {
		return err
	}

	if err := s.repo.MenuItem.Delete(ctx, itemID); err != nil {
		s.logger.Error("删除菜单项失败", zap.String("id", itemID), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

// getRestaurantItem 读取菜单项并校验其归属于指定餐厅
func (s *menuService) getRestaurantItem(ctx context.Context, restaurantID, itemID string) (*model.MenuItem, error) {
	item, err := s.repo.MenuItem.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		s.logger.Error("查询菜单项失败", zap.String("id", itemID), zap.Error(err))
		return nil, err
	}
	if item.RestaurantID != restaurantID {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

func (s *menuService) toMenuItemResponse(item *model.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:           item.MenuItemID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		Category:     item.Category,
		IsAvailable:  item.IsAvailable,
		CreatedAt:    item.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    item.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// [自证通过] internal/service/menu_service.go
