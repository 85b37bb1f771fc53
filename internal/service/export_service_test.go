package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"quickbite/backend/internal/model"
	"quickbite/backend/internal/repository"
	apperrors "quickbite/backend/pkg/errors"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockAvailabilityRepo, *mockRestaurantRepo) {
	availRepo := newMockAvailabilityRepo()
	restRepo := newMockRestaurantRepo()
	repo := &repository.Repository{
		User:         newMockUserRepo(),
		Restaurant:   restRepo,
		MenuItem:     newMockMenuItemRepo(),
		Availability: availRepo,
	}
	logger := zap.NewNop()
	svc := NewExportService(repo, logger)
	return svc, availRepo, restRepo
}

// ── ExportSchedule 测试 ──

func TestExportService_ExportSchedule_Success(t *testing.T) {
	svc, availRepo, restRepo := setupTestExportService()
	seedRestaurant(restRepo, "rest-001", "owner-001")
	availRepo.byRestaurant["rest-001"] = model.NewDefaultAvailability("rest-001")

	buf, filename, err := svc.ExportSchedule(context.Background(), "rest-001", "owner-001")
	if err != nil {
		t.Fatalf("ExportSchedule 应成功: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("导出内容不应为空")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾，实际=%s", filename)
	}
	if !strings.Contains(filename, "川香小馆") {
		t.Errorf("文件名应包含餐厅名，实际=%s", filename)
	}
}

func TestExportService_ExportSchedule_NoAvailability(t *testing.T) {
	svc, _, restRepo := setupTestExportService()
	seedRestaurant(restRepo, "rest-001", "owner-001")

	_, _, err := svc.ExportSchedule(context.Background(), "rest-001", "owner-001")
	if !errors.Is(err, ErrExportNoAvailability) {
		t.Errorf("期望 ErrExportNoAvailability，实际: %v", err)
	}
}

func TestExportService_ExportSchedule_NotOwner(t *testing.T) {
	svc, availRepo, restRepo := setupTestExportService()
	seedRestaurant(restRepo, "rest-001", "owner-001")
	availRepo.byRestaurant["rest-001"] = model.NewDefaultAvailability("rest-001")

	_, _, err := svc.ExportSchedule(context.Background(), "rest-001", "other-user")
	if !errors.Is(err, apperrors.ErrNotOwner) {
		t.Errorf("期望 ErrNotOwner，实际: %v", err)
	}
}
