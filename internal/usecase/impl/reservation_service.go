package impl

import (
	"context"
	"log/slog"
	"time"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/domain/service"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	gate         actorGate
	reservations repository.ReservationRepository
	views        service.ViewCache
	logger       *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(
	userRepo repository.UserRepository,
	reservationRepo repository.ReservationRepository,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.ReservationUsecase {
	return &reservationService{
		gate:         actorGate{users: userRepo},
		reservations: reservationRepo,
		views:        views,
		logger:       logger,
	}
}

// ListReservations retrieves the reservations on a piece of equipment,
// ordered by start time.
func (srv *reservationService) ListReservations(ctx context.Context, equipmentID uuid.UUID) ([]*entity.Reservation, error) {
	reservations, err := srv.reservations.FindByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return reservations, nil
}

// CreateReservation validates and persists a reservation. Any authenticated
// user may reserve equipment; the reservation belongs to the actor.
func (srv *reservationService) CreateReservation(ctx context.Context, actorID uuid.UUID, input *usecase.CreateReservationInput) (*entity.Reservation, error) {
	actor, err := srv.gate.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	reservation, err := entity.NewReservation(uuid.New(), input.EquipmentID, actor.ID, input.Purpose, input.StartsAt, input.EndsAt, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.reservations.Save(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "failed to create reservation")
	}

	srv.logger.Info("Reservation created", "reservationID", reservation.ID, "equipmentID", reservation.EquipmentID, "actorID", actorID)
	srv.views.Invalidate(equipmentDetailView(reservation.EquipmentID))

	return reservation, nil
}

// CancelReservation removes a reservation. The owner may always cancel their
// own; otherwise an editorial role is required.
func (srv *reservationService) CancelReservation(ctx context.Context, actorID, id uuid.UUID) error {
	actor, err := srv.gate.actor(ctx, actorID)
	if err != nil {
		return err
	}

	reservation, err := srv.reservations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("reservation not found")
		}

		return errors.Wrap(err, "failed to find reservation")
	}

	if reservation.UserID != actor.ID && !service.CanManageEquipment(actor) {
		return domainerrors.ErrForbidden.WrapMessage("only the owner or an editorial role may cancel a reservation")
	}

	if err := srv.reservations.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("reservation not found")
		}

		return errors.Wrap(err, "failed to cancel reservation")
	}

	srv.logger.Info("Reservation cancelled", "reservationID", id, "actorID", actorID)
	srv.views.Invalidate(equipmentDetailView(reservation.EquipmentID))

	return nil
}
