package model

// MenuItem 菜单项表 — 对应 menu_items
type MenuItem struct {
	MenuItemID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"menu_item_id"`
	RestaurantID string  `gorm:"type:uuid;not null;index"                       json:"restaurant_id"`
	Name         string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Description  string  `gorm:"type:varchar(1000)"                             json:"description,omitempty"`
	Price        float64 `gorm:"type:numeric(10,2);not null"                    json:"price"`
	Category     string  `gorm:"type:varchar(50)"                               json:"category,omitempty"`
	IsAvailable  bool    `gorm:"not null;default:true"                          json:"is_available"`
	BaseModel

	// 关联
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"restaurant,omitempty"`
}

// TableName 指定表名
func (MenuItem) TableName() string { return "menu_items" }
