package repository

import (
	"context"

	"gorm.io/gorm"

	"quickbite/backend/internal/model"
)

// MenuItemRepository 菜单项数据访问接口
type MenuItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id string) error
}

// menuItemRepo MenuItemRepository 的 GORM 实现
type menuItemRepo struct {
	db *gorm.DB
}

// NewMenuItemRepo 创建 MenuItemRepository 实例
func NewMenuItemRepo(db *gorm.DB) MenuItemRepository {
	return &menuItemRepo{db: db}
}

func (r *menuItemRepo) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepo) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepo) Update(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("menu_item_id = ?", id).
		Delete(&model.MenuItem{}).Error
}
