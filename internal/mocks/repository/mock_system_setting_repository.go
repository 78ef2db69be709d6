package repository

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSystemSettingRepository is a mock implementation of repository.SystemSettingRepository.
type MockSystemSettingRepository struct {
	mock.Mock
}

// NewMockSystemSettingRepository creates a new mock wired to the test lifecycle.
func NewMockSystemSettingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSystemSettingRepository {
	m := &MockSystemSettingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSystemSettingRepository) FindAll(ctx context.Context) ([]*entity.SystemSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.SystemSetting), args.Error(1)
}

func (m *MockSystemSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SystemSetting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SystemSetting), args.Error(1)
}

func (m *MockSystemSettingRepository) FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SystemSetting), args.Error(1)
}

func (m *MockSystemSettingRepository) Save(ctx context.Context, setting *entity.SystemSetting) error {
	args := m.Called(ctx, setting)

	return args.Error(0)
}

func (m *MockSystemSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
