package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"quickbite/backend/config"
	"quickbite/backend/internal/dto"
	"quickbite/backend/internal/repository"
	"quickbite/backend/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{
		User:         userRepo,
		Restaurant:   newMockRestaurantRepo(),
		MenuItem:     newMockMenuItemRepo(),
		Availability: newMockAvailabilityRepo(),
	}
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-not-for-production",
			AccessTokenTTL:  2 * time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	logger := zap.NewNop()
	// Redis 传 nil：黑名单检查降级放行
	svc := NewAuthService(cfg, repo, jwtMgr, nil, logger)
	return svc, userRepo
}

func registerTestUser(t *testing.T, svc AuthService, email string) *dto.TokenResponse {
	t.Helper()
	tokens, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "测试用户",
		Email:    email,
		Password: "password123",
		Role:     "owner",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	return tokens
}

// ── Register 测试 ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()

	tokens := registerTestUser(t, svc, "owner@example.com")
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("注册成功应返回 Token 对")
	}
	if tokens.ExpiresIn != int((2 * time.Hour).Seconds()) {
		t.Errorf("期望ExpiresIn=7200，实际=%d", tokens.ExpiresIn)
	}
	if tokens.User.Role != "owner" {
		t.Errorf("期望Role=owner，实际=%s", tokens.User.Role)
	}

	stored, _ := userRepo.GetByEmail(context.Background(), "owner@example.com")
	if stored.PasswordHash == "password123" {
		t.Error("密码不应明文存储")
	}
}

func TestAuthService_Register_DefaultRoleCustomer(t *testing.T) {
	svc, _ := setupTestAuthService()

	tokens, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "普通用户",
		Email:    "customer@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if tokens.User.Role != "customer" {
		t.Errorf("未指定角色应默认 customer，实际=%s", tokens.User.Role)
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, _ := setupTestAuthService()
	registerTestUser(t, svc, "owner@example.com")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "重复用户",
		Email:    "owner@example.com",
		Password: "password456",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际: %v", err)
	}
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupTestAuthService()
	registerTestUser(t, svc, "owner@example.com")

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if tokens.AccessToken == "" {
		t.Error("登录成功应返回 AccessToken")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService()
	registerTestUser(t, svc, "owner@example.com")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService()

	// 不存在的邮箱与密码错误返回同一错误，避免账号枚举
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, _ := setupTestAuthService()
	tokens := registerTestUser(t, svc, "owner@example.com")

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("刷新成功应返回新的 AccessToken")
	}
	if refreshed.User.Email != "owner@example.com" {
		t.Errorf("期望Email=owner@example.com，实际=%s", refreshed.User.Email)
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, _ := setupTestAuthService()
	tokens := registerTestUser(t, svc, "owner@example.com")

	// Access Token 不能当 Refresh Token 用
	_, err := svc.RefreshToken(context.Background(), tokens.AccessToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

// ── GetCurrentUser 测试 ──

func TestAuthService_GetCurrentUser(t *testing.T) {
	svc, _ := setupTestAuthService()
	tokens := registerTestUser(t, svc, "owner@example.com")

	user, err := svc.GetCurrentUser(context.Background(), tokens.User.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser 应成功: %v", err)
	}
	if user.Email != "owner@example.com" {
		t.Errorf("期望Email=owner@example.com，实际=%s", user.Email)
	}

	if _, err := svc.GetCurrentUser(context.Background(), "user-999"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
