// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) GetMenus(ctx context.Context) ([]model.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuService) GetMenu(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) CreateMenu(ctx context.Context, input model.MenuInput) (*model.Menu, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) UpdateMenu(ctx context.Context, menuID uuid.UUID, input model.MenuInput) (*model.Menu, error) {
	args := m.Called(ctx, menuID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) DeleteMenu(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

type MockSubmenuService struct {
	mock.Mock
}

func (m *MockSubmenuService) GetSubmenus(ctx context.Context, menuID uuid.UUID) ([]model.Submenu, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Submenu), args.Error(1)
}

func (m *MockSubmenuService) GetSubmenu(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID) (*model.Submenu, error) {
	args := m.Called(ctx, menuID, submenuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submenu), args.Error(1)
}

func (m *MockSubmenuService) CreateSubmenu(ctx context.Context, menuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	args := m.Called(ctx, menuID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submenu), args.Error(1)
}

func (m *MockSubmenuService) UpdateSubmenu(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	args := m.Called(ctx, menuID, submenuID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submenu), args.Error(1)
}

func (m *MockSubmenuService) DeleteSubmenu(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID) (*model.Submenu, error) {
	args := m.Called(ctx, menuID, submenuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submenu), args.Error(1)
}

type MockDishService struct {
	mock.Mock
}

func (m *MockDishService) GetDishes(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID) ([]model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishService) GetDish(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, dishID uuid.UUID) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) CreateDish(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) UpdateDish(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, dishID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, dishID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) DeleteDish(ctx context.Context, menuID uuid.UUID, submenuID uuid.UUID, dishID uuid.UUID) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}
