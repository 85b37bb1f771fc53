package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quickbite/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock RestaurantRepository ──

type mockRestaurantRepo struct {
	restaurants map[string]*model.Restaurant
	seq         int
}

func newMockRestaurantRepo() *mockRestaurantRepo {
	return &mockRestaurantRepo{restaurants: make(map[string]*model.Restaurant)}
}

func (m *mockRestaurantRepo) Create(_ context.Context, restaurant *model.Restaurant) error {
	if restaurant.RestaurantID == "" {
		m.seq++
		restaurant.RestaurantID = fmt.Sprintf("rest-%03d", m.seq)
	}
	m.restaurants[restaurant.RestaurantID] = restaurant
	return nil
}

func (m *mockRestaurantRepo) GetByID(_ context.Context, id string) (*model.Restaurant, error) {
	if r, ok := m.restaurants[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRestaurantRepo) GetByOwnerID(_ context.Context, ownerID string) (*model.Restaurant, error) {
	for _, r := range m.restaurants {
		if r.OwnerID == ownerID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRestaurantRepo) List(_ context.Context, keyword, cuisineType string, offset, limit int) ([]model.Restaurant, int64, error) {
	var matched []model.Restaurant
	for _, r := range m.restaurants {
		if !r.IsActive {
			continue
		}
		if cuisineType != "" && r.CuisineType != cuisineType {
			continue
		}
		matched = append(matched, *r)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockRestaurantRepo) Update(_ context.Context, restaurant *model.Restaurant) error {
	m.restaurants[restaurant.RestaurantID] = restaurant
	return nil
}

// ── Mock MenuItemRepository ──

type mockMenuItemRepo struct {
	items map[string]*model.MenuItem
	seq   int
}

func newMockMenuItemRepo() *mockMenuItemRepo {
	return &mockMenuItemRepo{items: make(map[string]*model.MenuItem)}
}

func (m *mockMenuItemRepo) Create(_ context.Context, item *model.MenuItem) error {
	if item.MenuItemID == "" {
		m.seq++
		item.MenuItemID = fmt.Sprintf("item-%03d", m.seq)
	}
	m.items[item.MenuItemID] = item
	return nil
}

func (m *mockMenuItemRepo) GetByID(_ context.Context, id string) (*model.MenuItem, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuItemRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]model.MenuItem, error) {
	var result []model.MenuItem
	for _, item := range m.items {
		if item.RestaurantID == restaurantID {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (m *mockMenuItemRepo) Update(_ context.Context, item *model.MenuItem) error {
	m.items[item.MenuItemID] = item
	return nil
}

func (m *mockMenuItemRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	byRestaurant map[string]*model.Availability
	seq          int
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{byRestaurant: make(map[string]*model.Availability)}
}

func (m *mockAvailabilityRepo) GetByRestaurantID(_ context.Context, restaurantID string) (*model.Availability, error) {
	if a, ok := m.byRestaurant[restaurantID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// CreateIfAbsent 模拟 ON CONFLICT DO NOTHING：已存在时静默返回
func (m *mockAvailabilityRepo) CreateIfAbsent(_ context.Context, availability *model.Availability) error {
	if _, ok := m.byRestaurant[availability.RestaurantID]; ok {
		return nil
	}
	if availability.AvailabilityID == "" {
		m.seq++
		availability.AvailabilityID = fmt.Sprintf("avail-%03d", m.seq)
	}
	m.byRestaurant[availability.RestaurantID] = availability
	return nil
}

func (m *mockAvailabilityRepo) Update(_ context.Context, availability *model.Availability) error {
	m.byRestaurant[availability.RestaurantID] = availability
	return nil
}
