// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockMenuRepositoryInterface struct {
	mock.Mock
}

func (m *MockMenuRepositoryInterface) List(ctx context.Context) ([]model.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepositoryInterface) Get(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepositoryInterface) Create(ctx context.Context, input model.MenuInput) (*model.Menu, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepositoryInterface) Update(ctx context.Context, menuID uuid.UUID, input model.MenuInput) (*model.Menu, error) {
	args := m.Called(ctx, menuID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepositoryInterface) Delete(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

type MockSubmenuRepositoryInterface struct {
	mock.Mock
}

func (m *MockSubmenuRepositoryInterface) List(ctx context.Context, menuID uuid.UUID) ([]model.Submenu, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Submenu), args.Error(1)
}

func (m *MockSubmenuRepositoryInterface) Get(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID) (*model.Submenu, error) {
	args := m.Called(ctx, menuID, submenuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submenu), args.Error(1)
}

func (m *MockSubmenuRepositoryInterface) Create(ctx context.Context, menuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	args := m.Called(ctx, menuID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submenu), args.Error(1)
}

func (m *MockSubmenuRepositoryInterface) Update(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	args := m.Called(ctx, menuID, submenuID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submenu), args.Error(1)
}

func (m *MockSubmenuRepositoryInterface) Delete(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID) (*model.Submenu, error) {
	args := m.Called(ctx, menuID, submenuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submenu), args.Error(1)
}

type MockDishRepositoryInterface struct {
	mock.Mock
}

func (m *MockDishRepositoryInterface) List(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID) ([]model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) Get(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, dishID uuid.UUID) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) Create(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) Update(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, dishID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, dishID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepositoryInterface) Delete(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, dishID uuid.UUID) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}
