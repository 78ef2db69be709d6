package repository

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReservationRepository is a mock implementation of repository.ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

// NewMockReservationRepository creates a new mock wired to the test lifecycle.
func NewMockReservationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReservationRepository {
	m := &MockReservationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.Reservation, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Save(ctx context.Context, reservation *entity.Reservation) error {
	args := m.Called(ctx, reservation)

	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
