package repository

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEquipmentRepository is a mock implementation of repository.EquipmentRepository.
type MockEquipmentRepository struct {
	mock.Mock
}

// NewMockEquipmentRepository creates a new mock wired to the test lifecycle.
func NewMockEquipmentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEquipmentRepository {
	m := &MockEquipmentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEquipmentRepository) FindAll(ctx context.Context) ([]*entity.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) FindByRoom(ctx context.Context, roomID uuid.UUID) ([]*entity.Equipment, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Save(ctx context.Context, equipment *entity.Equipment) error {
	args := m.Called(ctx, equipment)

	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockEquipmentCategoryRepository is a mock implementation of repository.EquipmentCategoryRepository.
type MockEquipmentCategoryRepository struct {
	mock.Mock
}

// NewMockEquipmentCategoryRepository creates a new mock wired to the test lifecycle.
func NewMockEquipmentCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEquipmentCategoryRepository {
	m := &MockEquipmentCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEquipmentCategoryRepository) FindAll(ctx context.Context) ([]*entity.EquipmentCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.EquipmentCategory), args.Error(1)
}

func (m *MockEquipmentCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.EquipmentCategory), args.Error(1)
}

func (m *MockEquipmentCategoryRepository) Save(ctx context.Context, category *entity.EquipmentCategory) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *MockEquipmentCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
