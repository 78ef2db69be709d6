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

// buildingService implements the BuildingUsecase interface.
type buildingService struct {
	gate      actorGate
	buildings repository.BuildingRepository
	views     service.ViewCache
	logger    *slog.Logger
}

// NewBuildingService is the constructor for buildingService.
func NewBuildingService(
	userRepo repository.UserRepository,
	buildingRepo repository.BuildingRepository,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.BuildingUsecase {
	return &buildingService{
		gate:      actorGate{users: userRepo},
		buildings: buildingRepo,
		views:     views,
		logger:    logger,
	}
}

// ListBuildings retrieves every building, serving the cached view when warm.
func (srv *buildingService) ListBuildings(ctx context.Context) ([]*entity.Building, error) {
	if cached, ok := srv.views.Get(viewBuildings); ok {
		if buildings, ok := cached.([]*entity.Building); ok {
			return buildings, nil
		}
	}

	buildings, err := srv.buildings.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}

	srv.views.Set(viewBuildings, buildings)

	return buildings, nil
}

// GetBuilding retrieves a single building by id.
func (srv *buildingService) GetBuilding(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	building, err := srv.buildings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("building not found")
		}

		return nil, errors.Wrap(err, "failed to get building")
	}

	return building, nil
}

// CreateBuilding validates and persists a new building.
func (srv *buildingService) CreateBuilding(ctx context.Context, actorID uuid.UUID, input *usecase.CreateBuildingInput) (*entity.Building, error) {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return nil, err
	}

	building, err := entity.NewBuilding(uuid.New(), input.Name, input.Address, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.buildings.Save(ctx, building); err != nil {
		return nil, errors.Wrap(err, "failed to create building")
	}

	srv.logger.Info("Building created", "buildingID", building.ID, "actorID", actorID)
	srv.views.Invalidate(buildingViews(building.ID)...)

	return building, nil
}

// UpdateBuilding validates and persists changes to an existing building.
func (srv *buildingService) UpdateBuilding(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateBuildingInput) (*entity.Building, error) {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return nil, err
	}

	existing, err := srv.buildings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("building not found")
		}

		return nil, errors.Wrap(err, "failed to find building")
	}

	building, err := entity.NewBuilding(id, input.Name, input.Address, time.Now())
	if err != nil {
		return nil, err
	}
	building.CreatedAt = existing.CreatedAt

	if err := srv.buildings.Save(ctx, building); err != nil {
		return nil, errors.Wrap(err, "failed to update building")
	}

	srv.logger.Info("Building updated", "buildingID", id, "actorID", actorID)
	srv.views.Invalidate(buildingViews(id)...)

	return building, nil
}

// DeleteBuilding removes a building. Buildings that still contain floors
// cannot be deleted.
func (srv *buildingService) DeleteBuilding(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.gate.buildingManager(ctx, actorID); err != nil {
		return err
	}

	if err := srv.buildings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("building not found")
		}

		return errors.Wrap(err, "failed to delete building")
	}

	srv.logger.Info("Building deleted", "buildingID", id, "actorID", actorID)
	srv.views.Invalidate(buildingViews(id)...)

	return nil
}
