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

// floorService implements the FloorUsecase interface.
type floorService struct {
	gate   actorGate
	floors repository.FloorRepository
	views  service.ViewCache
	logger *slog.Logger
}

// NewFloorService is the constructor for floorService.
func NewFloorService(
	userRepo repository.UserRepository,
	floorRepo repository.FloorRepository,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.FloorUsecase {
	return &floorService{
		gate:   actorGate{users: userRepo},
		floors: floorRepo,
		views:  views,
		logger: logger,
	}
}

// ListFloors retrieves the floors of a building.
func (srv *floorService) ListFloors(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error) {
	floors, err := srv.floors.FindByBuilding(ctx, buildingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list floors")
	}

	return floors, nil
}

// GetFloor retrieves a single floor by id.
func (srv *floorService) GetFloor(ctx context.Context, id uuid.UUID) (*entity.Floor, error) {
	floor, err := srv.floors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("floor not found")
		}

		return nil, errors.Wrap(err, "failed to get floor")
	}

	return floor, nil
}

// CreateFloor validates and persists a new floor inside a building.
func (srv *floorService) CreateFloor(ctx context.Context, actorID uuid.UUID, input *usecase.CreateFloorInput) (*entity.Floor, error) {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return nil, err
	}

	floor, err := entity.NewFloor(uuid.New(), input.Name, input.BuildingID, input.FloorNumber, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.floors.Save(ctx, floor); err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("building not found")
		}

		return nil, errors.Wrap(err, "failed to create floor")
	}

	srv.logger.Info("Floor created", "floorID", floor.ID, "buildingID", floor.BuildingID, "actorID", actorID)
	srv.views.Invalidate(floorViews(floor.BuildingID, floor.ID)...)

	return floor, nil
}

// UpdateFloor validates and persists changes to an existing floor. The
// owning building never changes.
func (srv *floorService) UpdateFloor(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateFloorInput) (*entity.Floor, error) {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return nil, err
	}

	existing, err := srv.floors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("floor not found")
		}

		return nil, errors.Wrap(err, "failed to find floor")
	}

	floor, err := entity.NewFloor(id, input.Name, existing.BuildingID, input.FloorNumber, time.Now())
	if err != nil {
		return nil, err
	}
	floor.CreatedAt = existing.CreatedAt

	if err := srv.floors.Save(ctx, floor); err != nil {
		return nil, errors.Wrap(err, "failed to update floor")
	}

	srv.logger.Info("Floor updated", "floorID", id, "actorID", actorID)
	srv.views.Invalidate(floorViews(floor.BuildingID, id)...)

	return floor, nil
}

// DeleteFloor removes a floor. Floors that still contain rooms cannot be
// deleted.
func (srv *floorService) DeleteFloor(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return err
	}

	existing, err := srv.floors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("floor not found")
		}

		return errors.Wrap(err, "failed to find floor")
	}

	if err := srv.floors.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("floor not found")
		}

		return errors.Wrap(err, "failed to delete floor")
	}

	srv.logger.Info("Floor deleted", "floorID", id, "actorID", actorID)
	srv.views.Invalidate(floorViews(existing.BuildingID, id)...)

	return nil
}
