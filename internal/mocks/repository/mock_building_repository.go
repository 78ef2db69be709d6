// Package repository provides hand-maintained testify mocks for the
// repository contracts.
package repository

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBuildingRepository is a mock implementation of repository.BuildingRepository.
type MockBuildingRepository struct {
	mock.Mock
}

// NewMockBuildingRepository creates a new mock wired to the test lifecycle.
func NewMockBuildingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBuildingRepository {
	m := &MockBuildingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBuildingRepository) FindAll(ctx context.Context) ([]*entity.Building, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Building), args.Error(1)
}

func (m *MockBuildingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Building), args.Error(1)
}

func (m *MockBuildingRepository) Save(ctx context.Context, building *entity.Building) error {
	args := m.Called(ctx, building)

	return args.Error(0)
}

func (m *MockBuildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
