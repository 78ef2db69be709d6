package impl

import (
	"context"
	"testing"
	"time"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	mockRepo "atrium/internal/mocks/repository"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reservationServiceFixtures holds all test dependencies for reservation service tests.
type reservationServiceFixtures struct {
	service      usecase.ReservationUsecase
	users        *mockRepo.MockUserRepository
	reservations *mockRepo.MockReservationRepository
}

func createTestReservationService(t *testing.T) reservationServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	reservations := mockRepo.NewMockReservationRepository(t)
	service := NewReservationService(users, reservations, newStubViewCache(), testLogger())

	return reservationServiceFixtures{
		service:      service,
		users:        users,
		reservations: reservations,
	}
}

func TestReservationService_CreateReservation_Success(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	startsAt := time.Now().Add(time.Hour)
	endsAt := startsAt.Add(2 * time.Hour)

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.reservations.On("Save", ctx, mock.AnythingOfType("*entity.Reservation")).Return(nil)

	reservation, err := fx.service.CreateReservation(ctx, member.ID, &usecase.CreateReservationInput{
		EquipmentID: uuid.New(),
		Purpose:     "Product demo",
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	})

	require.NoError(t, err)
	assert.Equal(t, member.ID, reservation.UserID)
	assert.Equal(t, "Product demo", reservation.Purpose)
}

func TestReservationService_CreateReservation_InvertedWindowRejected(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	startsAt := time.Now().Add(2 * time.Hour)

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)

	// No Save expectation: the window never reaches the repository.
	_, err := fx.service.CreateReservation(ctx, member.ID, &usecase.CreateReservationInput{
		EquipmentID: uuid.New(),
		Purpose:     "Product demo",
		StartsAt:    startsAt,
		EndsAt:      startsAt.Add(-time.Hour),
	})

	require.Error(t, err)

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "startsAt must be before endsAt", validationErr.Error())
}

func TestReservationService_CancelReservation_OwnerAllowed(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	reservation := &entity.Reservation{
		ID:          uuid.New(),
		EquipmentID: uuid.New(),
		UserID:      member.ID,
	}

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.reservations.On("FindByID", ctx, reservation.ID).Return(reservation, nil)
	fx.reservations.On("Delete", ctx, reservation.ID).Return(nil)

	err := fx.service.CancelReservation(ctx, member.ID, reservation.ID)

	require.NoError(t, err)
}

func TestReservationService_CancelReservation_StrangerForbidden(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	reservation := &entity.Reservation{
		ID:          uuid.New(),
		EquipmentID: uuid.New(),
		UserID:      uuid.New(),
	}

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.reservations.On("FindByID", ctx, reservation.ID).Return(reservation, nil)

	err := fx.service.CancelReservation(ctx, member.ID, reservation.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
