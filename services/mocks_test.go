package services

import (
	"context"
	"plantie/models"
	"plantie/repositories"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAllByEmail(ctx context.Context, email string) ([]models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, newUser models.User) (*models.User, error) {
	args := m.Called(ctx, newUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPlantRepository struct {
	mock.Mock
}

func (m *MockPlantRepository) Search(ctx context.Context, filters ...repositories.PlantFilter) ([]models.Plant, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plant), args.Error(1)
}

func (m *MockPlantRepository) FindByName(ctx context.Context, name string) (*models.Plant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plant), args.Error(1)
}

func (m *MockPlantRepository) Create(ctx context.Context, newPlant models.Plant) (*models.Plant, error) {
	args := m.Called(ctx, newPlant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plant), args.Error(1)
}

func (m *MockPlantRepository) Delete(ctx context.Context, code uint) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]models.CartOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartOrder), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uint) ([]models.UserOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserOrder), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, newOrder models.CartOrder) (*models.CartOrder, error) {
	args := m.Called(ctx, newOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartOrder), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderID uint) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Exists(ctx context.Context, adminID uint) (bool, error) {
	args := m.Called(ctx, adminID)
	return args.Bool(0), args.Error(1)
}

type MockAdminRequestRepository struct {
	mock.Mock
}

func (m *MockAdminRequestRepository) FindAll(ctx context.Context) ([]models.AdminRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminRequest), args.Error(1)
}

func (m *MockAdminRequestRepository) Create(ctx context.Context, newRequest models.AdminRequest) (*models.AdminRequest, error) {
	args := m.Called(ctx, newRequest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminRequest), args.Error(1)
}

func (m *MockAdminRequestRepository) Delete(ctx context.Context, requestID uint) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}
