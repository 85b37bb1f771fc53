package dto

import (
	"fmt"
	"regexp"
	"time"
)

// ── 营业时间模块 DTO ──

// timePattern 24 小时制 "HH:MM"（必须补零）
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// 合法的星期键名
var weekdayKeys = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// TimeSlotPayload 单个营业时段
type TimeSlotPayload struct {
	Open  string `json:"open"  binding:"required"`
	Close string `json:"close" binding:"required"`
}

// DaySchedulePayload 单日营业安排
// IsOpen 用指针以区分 false 与缺失；Slots 允许为空数组
type DaySchedulePayload struct {
	IsOpen *bool             `json:"is_open" binding:"required"`
	Slots  []TimeSlotPayload `json:"slots"`
}

// Validate 校验时段格式
// binding 校验不会下钻 map 值，is_open 缺失在这里兜底
func (d *DaySchedulePayload) Validate() error {
	if d.IsOpen == nil {
		return fmt.Errorf("is_open 不能为空")
	}
	for i, slot := range d.Slots {
		if !timePattern.MatchString(slot.Open) {
			return fmt.Errorf("slots[%d].open 格式无效，应为 HH:MM: %q", i, slot.Open)
		}
		if !timePattern.MatchString(slot.Close) {
			return fmt.Errorf("slots[%d].close 格式无效，应为 HH:MM: %q", i, slot.Close)
		}
	}
	return nil
}

// UpdateRegularHoursRequest 整体替换每周营业时间请求
// 传入的映射会整体替换现有 regular_hours，缺失的天即被删除
type UpdateRegularHoursRequest struct {
	RegularHours map[string]DaySchedulePayload `json:"regular_hours" binding:"required"`
}

// Validate 校验星期键名与时段格式
func (r *UpdateRegularHoursRequest) Validate() error {
	for day, schedule := range r.RegularHours {
		if !weekdayKeys[day] {
			return fmt.Errorf("无效的星期键名: %q", day)
		}
		if err := schedule.Validate(); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

// UpsertSpecialDayRequest 新增/覆盖特殊日期请求
type UpsertSpecialDayRequest struct {
	Date     string             `json:"date"     binding:"required"`
	Schedule DaySchedulePayload `json:"schedule" binding:"required"`
}

// Validate 校验日期与时段格式
func (r *UpsertSpecialDayRequest) Validate() error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return fmt.Errorf("date 格式无效，应为 YYYY-MM-DD: %q", r.Date)
	}
	return r.Schedule.Validate()
}

// AvailabilityResponse 营业时间记录响应
type AvailabilityResponse struct {
	ID           string                        `json:"id"`
	RestaurantID string                        `json:"restaurant_id"`
	RegularHours map[string]DaySchedulePayload `json:"regular_hours"`
	SpecialDays  map[string]DaySchedulePayload `json:"special_days"`
	CreatedAt    string                        `json:"created_at"`
	UpdatedAt    string                        `json:"updated_at"`
}

// CurrentStatusResponse 当前营业状态响应
// 营业中: is_open=true 且 next_slot 为当前时段的打烊时间（"营业至"）
// 已打烊: is_open=false 且 next_opening_time 为下次开门时间（7 天内无则为 null）
type CurrentStatusResponse struct {
	IsOpen          bool    `json:"is_open"`
	NextSlot        string  `json:"next_slot,omitempty"`
	NextOpeningTime *string `json:"next_opening_time"`
}

// [自证通过] internal/dto/availability.go
