package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"quickbite/backend/internal/dto"
	"quickbite/backend/internal/service"
	apperrors "quickbite/backend/pkg/errors"
	"quickbite/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult   *dto.TokenResponse
	registerErr      error
	loginResult      *dto.TokenResponse
	loginErr         error
	refreshResult    *dto.TokenResponse
	refreshErr       error
	logoutErr        error
	getCurrentResult *dto.UserResponse
	getCurrentErr    error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.TokenResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}

// ── Mock AvailabilityService ──

type mockAvailabilityService struct {
	getResult     *dto.AvailabilityResponse
	getErr        error
	updateResult  *dto.AvailabilityResponse
	updateErr     error
	upsertResult  *dto.AvailabilityResponse
	upsertErr     error
	removeResult  *dto.AvailabilityResponse
	removeErr     error
	statusResult  *dto.CurrentStatusResponse
	statusErr     error
	lastUpdateReq *dto.UpdateRegularHoursRequest
}

func (m *mockAvailabilityService) GetRestaurantAvailability(_ context.Context, _ string) (*dto.AvailabilityResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockAvailabilityService) UpdateRegularHours(_ context.Context, _ string, req *dto.UpdateRegularHoursRequest, _ string) (*dto.AvailabilityResponse, error) {
	m.lastUpdateReq = req
	return m.updateResult, m.updateErr
}
func (m *mockAvailabilityService) UpsertSpecialDay(_ context.Context, _ string, _ *dto.UpsertSpecialDayRequest, _ string) (*dto.AvailabilityResponse, error) {
	return m.upsertResult, m.upsertErr
}
func (m *mockAvailabilityService) RemoveSpecialDay(_ context.Context, _, _, _ string) (*dto.AvailabilityResponse, error) {
	return m.removeResult, m.removeErr
}
func (m *mockAvailabilityService) GetCurrentStatus(_ context.Context, _ string) (*dto.CurrentStatusResponse, error) {
	return m.statusResult, m.statusErr
}

// ── Mock RestaurantService ──

type mockRestaurantService struct {
	createResult *dto.RestaurantResponse
	createErr    error
	getResult    *dto.RestaurantResponse
	getErr       error
	mineResult   *dto.RestaurantResponse
	mineErr      error
	listResult   []dto.RestaurantResponse
	listTotal    int64
	listErr      error
	updateResult *dto.RestaurantResponse
	updateErr    error
	approveErr   error
}

func (m *mockRestaurantService) Create(_ context.Context, _ *dto.CreateRestaurantRequest, _ string) (*dto.RestaurantResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockRestaurantService) GetByID(_ context.Context, _ string) (*dto.RestaurantResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockRestaurantService) GetMine(_ context.Context, _ string) (*dto.RestaurantResponse, error) {
	return m.mineResult, m.mineErr
}
func (m *mockRestaurantService) List(_ context.Context, _ *dto.RestaurantListRequest) ([]dto.RestaurantResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockRestaurantService) Update(_ context.Context, _ string, _ *dto.UpdateRestaurantRequest, _ string) (*dto.RestaurantResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockRestaurantService) Approve(_ context.Context, _ string, _ bool) (*dto.RestaurantResponse, error) {
	return m.updateResult, m.approveErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// injectAuth 模拟 JWT 中间件注入的上下文
func injectAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "owner")
		c.Next()
	}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{registerErr: service.ErrEmailTaken})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Name:     "测试用户",
		Email:    "owner@example.com",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	// 不经过 JWT 中间件：上下文无 user_id
	r := gin.New()
	r.GET("/auth/me", h.Me)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AvailabilityHandler Tests
// ═══════════════════════════════════════════════════════════

func defaultAvailabilityResponse() *dto.AvailabilityResponse {
	isOpen := true
	return &dto.AvailabilityResponse{
		ID:           "avail-001",
		RestaurantID: "rest-001",
		RegularHours: map[string]dto.DaySchedulePayload{
			"monday": {IsOpen: &isOpen, Slots: []dto.TimeSlotPayload{{Open: "09:00", Close: "20:00"}}},
		},
		SpecialDays: map[string]dto.DaySchedulePayload{},
	}
}

func TestAvailabilityHandler_Get_Success(t *testing.T) {
	mock := &mockAvailabilityService{getResult: defaultAvailabilityResponse()}
	h := NewAvailabilityHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/availability/restaurant/rest-001", nil)

	r := gin.New()
	r.GET("/availability/restaurant/:id", h.GetAvailability)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAvailabilityHandler_Get_RestaurantNotFound(t *testing.T) {
	mock := &mockAvailabilityService{getErr: service.ErrRestaurantNotFound}
	h := NewAvailabilityHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/availability/restaurant/rest-999", nil)

	r := gin.New()
	r.GET("/availability/restaurant/:id", h.GetAvailability)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13001 {
		t.Errorf("expected error code 13001, got %d", resp.Code)
	}
}

func TestAvailabilityHandler_UpdateRegularHours_Success(t *testing.T) {
	mock := &mockAvailabilityService{updateResult: defaultAvailabilityResponse()}
	h := NewAvailabilityHandler(mock)

	isOpen := true
	body := dto.UpdateRegularHoursRequest{
		RegularHours: map[string]dto.DaySchedulePayload{
			"monday": {IsOpen: &isOpen, Slots: []dto.TimeSlotPayload{{Open: "09:00", Close: "20:00"}}},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/availability/restaurant/rest-001", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/availability/restaurant/:id", injectAuth("owner-001"), h.UpdateRegularHours)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.lastUpdateReq == nil {
		t.Fatal("expected service to receive request")
	}
	if _, ok := mock.lastUpdateReq.RegularHours["monday"]; !ok {
		t.Error("expected monday schedule to be forwarded")
	}
}

func TestAvailabilityHandler_UpdateRegularHours_InvalidWeekday(t *testing.T) {
	mock := &mockAvailabilityService{updateResult: defaultAvailabilityResponse()}
	h := NewAvailabilityHandler(mock)

	isOpen := true
	body := dto.UpdateRegularHoursRequest{
		RegularHours: map[string]dto.DaySchedulePayload{
			"funday": {IsOpen: &isOpen},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/availability/restaurant/rest-001", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/availability/restaurant/:id", injectAuth("owner-001"), h.UpdateRegularHours)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if mock.lastUpdateReq != nil {
		t.Error("无效键名不应到达 Service 层")
	}
}

func TestAvailabilityHandler_UpdateRegularHours_InvalidTimeFormat(t *testing.T) {
	h := NewAvailabilityHandler(&mockAvailabilityService{})

	isOpen := true
	body := dto.UpdateRegularHoursRequest{
		RegularHours: map[string]dto.DaySchedulePayload{
			"monday": {IsOpen: &isOpen, Slots: []dto.TimeSlotPayload{{Open: "9:00", Close: "20:00"}}},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/availability/restaurant/rest-001", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/availability/restaurant/:id", injectAuth("owner-001"), h.UpdateRegularHours)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unpadded time, got %d", w.Code)
	}
}

func TestAvailabilityHandler_UpdateRegularHours_NotOwner(t *testing.T) {
	mock := &mockAvailabilityService{updateErr: apperrors.ErrNotOwner}
	h := NewAvailabilityHandler(mock)

	isOpen := false
	body := dto.UpdateRegularHoursRequest{
		RegularHours: map[string]dto.DaySchedulePayload{
			"monday": {IsOpen: &isOpen},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/availability/restaurant/rest-001", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/availability/restaurant/:id", injectAuth("other-user"), h.UpdateRegularHours)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13003 {
		t.Errorf("expected error code 13003, got %d", resp.Code)
	}
}

func TestAvailabilityHandler_UpsertSpecialDay_BadDate(t *testing.T) {
	h := NewAvailabilityHandler(&mockAvailabilityService{})

	isOpen := false
	body := dto.UpsertSpecialDayRequest{
		Date:     "2026/10/01",
		Schedule: dto.DaySchedulePayload{IsOpen: &isOpen},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/availability/restaurant/rest-001/special-days", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/availability/restaurant/:id/special-days", injectAuth("owner-001"), h.UpsertSpecialDay)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date format, got %d", w.Code)
	}
}

func TestAvailabilityHandler_RemoveSpecialDay_NoRecord(t *testing.T) {
	mock := &mockAvailabilityService{removeErr: service.ErrAvailabilityNotFound}
	h := NewAvailabilityHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/availability/restaurant/rest-001/special-days/2026-10-01", nil)

	r := gin.New()
	r.DELETE("/availability/restaurant/:id/special-days/:date", injectAuth("owner-001"), h.RemoveSpecialDay)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14001 {
		t.Errorf("expected error code 14001, got %d", resp.Code)
	}
}

func TestAvailabilityHandler_CurrentStatus_Open(t *testing.T) {
	mock := &mockAvailabilityService{
		statusResult: &dto.CurrentStatusResponse{IsOpen: true, NextSlot: "20:00"},
	}
	h := NewAvailabilityHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/availability/current-status/rest-001", nil)

	r := gin.New()
	r.GET("/availability/current-status/:id", h.GetCurrentStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var raw struct {
		Data struct {
			IsOpen   bool   `json:"is_open"`
			NextSlot string `json:"next_slot"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &raw)
	if !raw.Data.IsOpen || raw.Data.NextSlot != "20:00" {
		t.Errorf("unexpected status payload: %s", w.Body.String())
	}
}

func TestAvailabilityHandler_CurrentStatus_ClosedNullNextOpening(t *testing.T) {
	// 全周闭店时 next_opening_time 应序列化为显式 null
	mock := &mockAvailabilityService{
		statusResult: &dto.CurrentStatusResponse{IsOpen: false, NextOpeningTime: nil},
	}
	h := NewAvailabilityHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/availability/current-status/rest-001", nil)

	r := gin.New()
	r.GET("/availability/current-status/:id", h.GetCurrentStatus)
	r.ServeHTTP(w, req)

	var raw struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &raw)
	v, ok := raw.Data["next_opening_time"]
	if !ok {
		t.Fatal("next_opening_time 字段应始终存在")
	}
	if string(v) != "null" {
		t.Errorf("expected null, got %s", string(v))
	}
}

// ═══════════════════════════════════════════════════════════
// RestaurantHandler Tests
// ═══════════════════════════════════════════════════════════

func TestRestaurantHandler_Create_Success(t *testing.T) {
	mock := &mockRestaurantService{
		createResult: &dto.RestaurantResponse{ID: "rest-001", Name: "川香小馆", OwnerID: "owner-001"},
	}
	h := NewRestaurantHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/restaurants", jsonBody(dto.CreateRestaurantRequest{
		Name:    "川香小馆",
		Address: "人民路 88 号",
		Phone:   "021-12345678",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/restaurants", injectAuth("owner-001"), h.CreateRestaurant)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestRestaurantHandler_Create_Duplicate(t *testing.T) {
	mock := &mockRestaurantService{createErr: service.ErrOwnerHasRestaurant}
	h := NewRestaurantHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/restaurants", jsonBody(dto.CreateRestaurantRequest{
		Name:    "第二家店",
		Address: "某处",
		Phone:   "123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/restaurants", injectAuth("owner-001"), h.CreateRestaurant)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13002 {
		t.Errorf("expected error code 13002, got %d", resp.Code)
	}
}

func TestRestaurantHandler_Get_NotFound(t *testing.T) {
	mock := &mockRestaurantService{getErr: service.ErrRestaurantNotFound}
	h := NewRestaurantHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/restaurants/rest-999", nil)

	r := gin.New()
	r.GET("/restaurants/:id", h.GetRestaurant)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
