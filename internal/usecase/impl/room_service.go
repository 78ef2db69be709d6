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

// roomService implements the RoomUsecase interface.
type roomService struct {
	gate   actorGate
	rooms  repository.RoomRepository
	views  service.ViewCache
	logger *slog.Logger
}

// NewRoomService is the constructor for roomService.
func NewRoomService(
	userRepo repository.UserRepository,
	roomRepo repository.RoomRepository,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.RoomUsecase {
	return &roomService{
		gate:   actorGate{users: userRepo},
		rooms:  roomRepo,
		views:  views,
		logger: logger,
	}
}

// ListRooms retrieves the rooms of a floor.
func (srv *roomService) ListRooms(ctx context.Context, floorID uuid.UUID) ([]*entity.Room, error) {
	rooms, err := srv.rooms.FindByFloor(ctx, floorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return rooms, nil
}

// GetRoom retrieves a single room by id.
func (srv *roomService) GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := srv.rooms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("room not found")
		}

		return nil, errors.Wrap(err, "failed to get room")
	}

	return room, nil
}

// CreateRoom validates and persists a new room on a floor.
func (srv *roomService) CreateRoom(ctx context.Context, actorID uuid.UUID, input *usecase.CreateRoomInput) (*entity.Room, error) {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return nil, err
	}

	room, err := entity.NewRoom(uuid.New(), input.Name, input.FloorID, input.Capacity, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.rooms.Save(ctx, room); err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("floor not found")
		}

		return nil, errors.Wrap(err, "failed to create room")
	}

	srv.logger.Info("Room created", "roomID", room.ID, "floorID", room.FloorID, "actorID", actorID)
	srv.views.Invalidate(roomViews(room.FloorID, room.ID)...)

	return room, nil
}

// UpdateRoom validates and persists changes to an existing room. The owning
// floor never changes.
func (srv *roomService) UpdateRoom(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateRoomInput) (*entity.Room, error) {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return nil, err
	}

	existing, err := srv.rooms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("room not found")
		}

		return nil, errors.Wrap(err, "failed to find room")
	}

	room, err := entity.NewRoom(id, input.Name, existing.FloorID, input.Capacity, time.Now())
	if err != nil {
		return nil, err
	}
	room.CreatedAt = existing.CreatedAt

	if err := srv.rooms.Save(ctx, room); err != nil {
		return nil, errors.Wrap(err, "failed to update room")
	}

	srv.logger.Info("Room updated", "roomID", id, "actorID", actorID)
	srv.views.Invalidate(roomViews(room.FloorID, id)...)

	return room, nil
}

// DeleteRoom removes a room. Rooms that still contain equipment cannot be
// deleted.
func (srv *roomService) DeleteRoom(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return err
	}

	existing, err := srv.rooms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("room not found")
		}

		return errors.Wrap(err, "failed to find room")
	}

	if err := srv.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("room not found")
		}

		return errors.Wrap(err, "failed to delete room")
	}

	srv.logger.Info("Room deleted", "roomID", id, "actorID", actorID)
	srv.views.Invalidate(roomViews(existing.FloorID, id)...)

	return nil
}
