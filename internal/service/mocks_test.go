package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"superdaily/internal/model"
)

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingRepository) Insert(ctx context.Context, row model.BookingRow) (int64, error) {
	args := m.Called(ctx, row)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) FirstOrCreate(ctx context.Context, record *model.ProductRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockCache is a mock implementation of cache.Store.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	args := m.Called(ctx, key, dest)
	return args.Bool(0)
}

func (m *MockCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}
