package repository

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMaintenanceRecordRepository is a mock implementation of repository.MaintenanceRecordRepository.
type MockMaintenanceRecordRepository struct {
	mock.Mock
}

// NewMockMaintenanceRecordRepository creates a new mock wired to the test lifecycle.
func NewMockMaintenanceRecordRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMaintenanceRecordRepository {
	m := &MockMaintenanceRecordRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMaintenanceRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceRecordRepository) FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.MaintenanceRecord, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceRecordRepository) Save(ctx context.Context, record *entity.MaintenanceRecord) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}

func (m *MockMaintenanceRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
