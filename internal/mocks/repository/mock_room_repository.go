package repository

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRoomRepository is a mock implementation of repository.RoomRepository.
type MockRoomRepository struct {
	mock.Mock
}

// NewMockRoomRepository creates a new mock wired to the test lifecycle.
func NewMockRoomRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoomRepository {
	m := &MockRoomRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRoomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByFloor(ctx context.Context, floorID uuid.UUID) ([]*entity.Room, error) {
	args := m.Called(ctx, floorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) Save(ctx context.Context, room *entity.Room) error {
	args := m.Called(ctx, room)

	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
