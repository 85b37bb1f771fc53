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

// ── 餐厅模块业务错误 ──

var (
	ErrRestaurantNotFound = errors.New("餐厅不存在")
	ErrOwnerHasRestaurant = errors.New("该账号已创建过餐厅")
)

// RestaurantService 餐厅业务接口
type RestaurantService interface {
	Create(ctx context.Context, req *dto.CreateRestaurantRequest, callerID string) (*dto.RestaurantResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RestaurantResponse, error)
	GetMine(ctx context.Context, callerID string) (*dto.RestaurantResponse, error)
	List(ctx context.Context, req *dto.RestaurantListRequest) ([]dto.RestaurantResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateRestaurantRequest, callerID string) (*dto.RestaurantResponse, error)
	Approve(ctx context.Context, id string, approved bool) (*dto.RestaurantResponse, error)
}

type restaurantService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRestaurantService 创建 RestaurantService 实例
func NewRestaurantService(repo *repository.Repository, logger *zap.Logger) RestaurantService {
	return &restaurantService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *restaurantService) Create(ctx context.Context, req *dto.CreateRestaurantRequest, callerID string) (*dto.RestaurantResponse, error) {
	// 每个所有者至多一家餐厅
	if _, err := s.repo.Restaurant.GetByOwnerID(ctx, callerID); err == nil {
		return nil, ErrOwnerHasRestaurant
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询餐厅失败", zap.String("owner_id", callerID), zap.Error(err))
		return nil, err
	}

	restaurant := &model.Restaurant{
		OwnerID:     callerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		CuisineType: req.CuisineType,
		IsApproved:  false,
		IsActive:    true,
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		s.logger.Error("创建餐厅失败", zap.Error(err))
		return nil, err
	}

	return s.toRestaurantResponse(restaurant), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *restaurantService) GetByID(ctx context.Context, id string) (*dto.RestaurantResponse, error) {
	restaurant, err := s.repo.Restaurant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("查询餐厅失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toRestaurantResponse(restaurant), nil
}

// ────────────────────── GetMine ──────────────────────

func (s *restaurantService) GetMine(ctx context.Context, callerID string) (*dto.RestaurantResponse, error) {
	restaurant, err := s.repo.Restaurant.GetByOwnerID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("查询餐厅失败", zap.String("owner_id", callerID), zap.Error(err))
		return nil, err
	}

	return s.toRestaurantResponse(restaurant), nil
}

// ────────────────────── List ──────────────────────

func (s *restaurantService) List(ctx context.Context, req *dto.RestaurantListRequest) ([]dto.RestaurantResponse, int64, error) {
	req.Normalize()
	offset := (req.Page - 1) * req.PageSize

	restaurants, total, err := s.repo.Restaurant.List(ctx, req.Keyword, req.CuisineType, offset, req.PageSize)
	if err != nil {
		s.logger.Error("查询餐厅列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		result = append(result, *s.toRestaurantResponse(&restaurants[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *restaurantService) Update(ctx context.Context, id string, req *dto.UpdateRestaurantRequest, callerID string) (*dto.RestaurantResponse, error) {
	restaurant, err := requireRestaurantOwner(ctx, s.repo, id, callerID, s.logger)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.CuisineType != nil {
		restaurant.CuisineType = *req.CuisineType
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		s.logger.Error("更新餐厅失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toRestaurantResponse(restaurant), nil
}

// ────────────────────── Approve ──────────────────────

func (s *restaurantService) Approve(ctx context.Context, id string, approved bool) (*dto.RestaurantResponse, error) {
	restaurant, err := s.repo.Restaurant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("查询餐厅失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	restaurant.IsApproved = approved

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		s.logger.Error("审批餐厅失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toRestaurantResponse(restaurant), nil
}

// ── 内部辅助方法 ──

func (s *restaurantService) toRestaurantResponse(r *model.Restaurant) *dto.RestaurantResponse {
	return &dto.RestaurantResponse{
		ID:          r.RestaurantID,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Phone:       r.Phone,
		CuisineType: r.CuisineType,
		IsApproved:  r.IsApproved,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   r.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
