package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quickbite/backend/internal/model"
	"quickbite/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAvailability = errors.New("该餐厅暂无营业时间配置")
	ErrExportGenerateFail   = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 一期仅实现营业时间表导出为 Excel (.xlsx)
//   - 订单报表导出依赖订单模块，归入二期
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Excel 格式：Sheet1 每周营业时间（按星期一行），Sheet2 特殊日期列表
type ExportService interface {
	// ExportSchedule 导出餐厅营业时间表为 Excel，仅店主本人可操作
	ExportSchedule(ctx context.Context, restaurantID, callerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportSchedule — 导出营业时间表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "每周营业时间"：| 星期 | 是否营业 | 时段 |
//   - Sheet "特殊日期"：    | 日期 | 是否营业 | 时段 |（按日期排序）
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportSchedule(ctx context.Context, restaurantID, callerID string) (*bytes.Buffer, string, error) {
	// 1. 权限校验：仅店主本人可导出
	restaurant, err := requireRestaurantOwner(ctx, s.repo, restaurantID, callerID, s.logger)
	if err != nil {
		return nil, "", err
	}

	// 2. 查询营业时间配置
	availability, err := s.repo.Availability.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportNoAvailability
		}
		s.logger.Error("查询营业时间失败", zap.Error(err))
		return nil, "", err
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	weeklySheet := "每周营业时间"
	idx, _ := f.NewSheet(weeklySheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(weeklySheet, "A", "A", 12)
	f.SetColWidth(weeklySheet, "B", "B", 10)
	f.SetColWidth(weeklySheet, "C", "C", 30)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(weeklySheet, "A1", fmt.Sprintf("%s — 营业时间", restaurant.Name))
	f.MergeCell(weeklySheet, "A1", "C1")
	f.SetCellStyle(weeklySheet, "A1", "A1", headerStyle)

	// 表头
	f.SetCellValue(weeklySheet, "A2", "星期")
	f.SetCellValue(weeklySheet, "B2", "是否营业")
	f.SetCellValue(weeklySheet, "C2", "时段")

	// 数据行：周一起始，更符合阅读习惯
	dayNames := map[string]string{
		"monday":    "周一",
		"tuesday":   "周二",
		"wednesday": "周三",
		"thursday":  "周四",
		"friday":    "周五",
		"saturday":  "周六",
		"sunday":    "周日",
	}
	displayOrder := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	row := 3
	for _, weekday := range displayOrder {
		schedule := availability.RegularHours[weekday]
		f.SetCellValue(weeklySheet, exportCell("A", row), dayNames[weekday])
		f.SetCellValue(weeklySheet, exportCell("B", row), openLabel(schedule.IsOpen))
		f.SetCellValue(weeklySheet, exportCell("C", row), formatSlots(schedule.Slots))
		row++
	}

	// 特殊日期 Sheet（有配置时才生成）
	if len(availability.SpecialDays) > 0 {
		specialSheet := "特殊日期"
		f.NewSheet(specialSheet)
		f.SetColWidth(specialSheet, "A", "A", 14)
		f.SetColWidth(specialSheet, "B", "B", 10)
		f.SetColWidth(specialSheet, "C", "C", 30)

		f.SetCellValue(specialSheet, "A1", "日期")
		f.SetCellValue(specialSheet, "B1", "是否营业")
		f.SetCellValue(specialSheet, "C1", "时段")

		var dates []string
		for date := range availability.SpecialDays {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		row = 2
		for _, date := range dates {
			schedule := availability.SpecialDays[date]
			f.SetCellValue(specialSheet, exportCell("A", row), date)
			f.SetCellValue(specialSheet, exportCell("B", row), openLabel(schedule.IsOpen))
			f.SetCellValue(specialSheet, exportCell("C", row), formatSlots(schedule.Slots))
			row++
		}
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("营业时间_%s.xlsx", restaurant.Name)
	return buf, filename, nil
}

// ── 辅助函数 ──

func openLabel(isOpen bool) string {
	if isOpen {
		return "营业"
	}
	return "休息"
}

func formatSlots(slots []model.TimeSlot) string {
	if len(slots) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		parts = append(parts, fmt.Sprintf("%s-%s", slot.Open, slot.Close))
	}
	return strings.Join(parts, ", ")
}

func exportCell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
