package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	Restaurant   RestaurantRepository
	MenuItem     MenuItemRepository
	Availability AvailabilityRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Restaurant:   NewRestaurantRepo(db),
		MenuItem:     NewMenuItemRepo(db),
		Availability: NewAvailabilityRepo(db),
	}
}
