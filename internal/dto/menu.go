package dto

// ── 菜单模块 DTO ──

// CreateMenuItemRequest 创建菜单项请求
type CreateMenuItemRequest struct {
	Name        string  `json:"name"        binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	Price       float64 `json:"price"       binding:"required,gt=0"`
	Category    string  `json:"category"    binding:"omitempty,max=50"`
}

// UpdateMenuItemRequest 更新菜单项请求
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"         binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description"  binding:"omitempty,max=1000"`
	Price       *float64 `json:"price"        binding:"omitempty,gt=0"`
	Category    *string  `json:"category"     binding:"omitempty,max=50"`
	IsAvailable *bool    `json:"is_available"`
}

// MenuItemResponse 菜单项响应
type MenuItemResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Category     string  `json:"category,omitempty"`
	IsAvailable  bool    `json:"is_available"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
