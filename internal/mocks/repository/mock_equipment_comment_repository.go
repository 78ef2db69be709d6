package repository

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEquipmentCommentRepository is a mock implementation of repository.EquipmentCommentRepository.
type MockEquipmentCommentRepository struct {
	mock.Mock
}

// NewMockEquipmentCommentRepository creates a new mock wired to the test lifecycle.
func NewMockEquipmentCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEquipmentCommentRepository {
	m := &MockEquipmentCommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEquipmentCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.EquipmentComment), args.Error(1)
}

func (m *MockEquipmentCommentRepository) FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.EquipmentComment, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.EquipmentComment), args.Error(1)
}

func (m *MockEquipmentCommentRepository) Save(ctx context.Context, comment *entity.EquipmentComment) error {
	args := m.Called(ctx, comment)

	return args.Error(0)
}

func (m *MockEquipmentCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
