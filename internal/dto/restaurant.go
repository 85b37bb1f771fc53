package dto

// ── 餐厅模块 DTO ──

// CreateRestaurantRequest 创建餐厅请求
type CreateRestaurantRequest struct {
	Name        string `json:"name"         binding:"required,min=2,max=200"`
	Description string `json:"description"  binding:"omitempty,max=1000"`
	Address     string `json:"address"      binding:"required,max=500"`
	Phone       string `json:"phone"        binding:"required,max=20"`
	CuisineType string `json:"cuisine_type" binding:"omitempty,max=50"`
}

// UpdateRestaurantRequest 更新餐厅请求
type UpdateRestaurantRequest struct {
	Name        *string `json:"name"         binding:"omitempty,min=2,max=200"`
	Description *string `json:"description"  binding:"omitempty,max=1000"`
	Address     *string `json:"address"      binding:"omitempty,max=500"`
	Phone       *string `json:"phone"        binding:"omitempty,max=20"`
	CuisineType *string `json:"cuisine_type" binding:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
}

// RestaurantListRequest 餐厅列表查询参数
type RestaurantListRequest struct {
	PaginationRequest
	Keyword     string `form:"keyword"      binding:"omitempty,max=100"`
	CuisineType string `form:"cuisine_type" binding:"omitempty,max=50"`
}

// ApproveRestaurantRequest 审批餐厅请求（仅管理员）
type ApproveRestaurantRequest struct {
	Approved bool `json:"approved"`
}

// RestaurantResponse 餐厅信息响应
type RestaurantResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	CuisineType string `json:"cuisine_type,omitempty"`
	IsApproved  bool   `json:"is_approved"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
