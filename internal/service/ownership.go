package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"quickbite/backend/internal/model"
	"quickbite/backend/internal/repository"
	apperrors "quickbite/backend/pkg/errors"
)

// requireRestaurantOwner 所有写操作共用的所有权守卫：
// 餐厅必须存在，且 callerID 必须等于其 owner_id。
// 校验通过时返回餐厅记录，各 Service 不再各自内联存在性/所有权判断。
func requireRestaurantOwner(ctx context.Context, repo *repository.Repository, restaurantID, callerID string, logger *zap.Logger) (*model.Restaurant, error) {
	restaurant, err := repo.Restaurant.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		logger.Error("查询餐厅失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	if restaurant.OwnerID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	return restaurant, nil
}
