// Package service provides hand-maintained testify mocks for the domain
// service contracts.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new mock wired to the test lifecycle.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (jwt.MapClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(jwt.MapClaims), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (jwt.MapClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(jwt.MapClaims), args.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new mock wired to the test lifecycle.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a new mock wired to the test lifecycle.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateAssetTag(equipmentID uuid.UUID) ([]byte, error) {
	args := m.Called(equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
