package repository

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFloorRepository is a mock implementation of repository.FloorRepository.
type MockFloorRepository struct {
	mock.Mock
}

// NewMockFloorRepository creates a new mock wired to the test lifecycle.
func NewMockFloorRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFloorRepository {
	m := &MockFloorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFloorRepository) FindAll(ctx context.Context) ([]*entity.Floor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Floor), args.Error(1)
}

func (m *MockFloorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Floor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Floor), args.Error(1)
}

func (m *MockFloorRepository) FindByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error) {
	args := m.Called(ctx, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Floor), args.Error(1)
}

func (m *MockFloorRepository) Save(ctx context.Context, floor *entity.Floor) error {
	args := m.Called(ctx, floor)

	return args.Error(0)
}

func (m *MockFloorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
