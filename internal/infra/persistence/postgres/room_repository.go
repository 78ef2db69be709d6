package postgres

import (
	"context"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roomRepository implements the repository.RoomRepository interface.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// FindAll retrieves every room.
func (repo *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	var roomModels []*model.RoomModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&roomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return mapRooms(roomModels), nil
}

// FindByID retrieves a room by its unique ID.
func (repo *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by ID")
	}

	return toRoomDomain(&roomM), nil
}

// FindByFloor retrieves the rooms of a floor.
func (repo *roomRepository) FindByFloor(ctx context.Context, floorID uuid.UUID) ([]*entity.Room, error) {
	var roomModels []*model.RoomModel

	if err := repo.db.WithContext(ctx).
		Where("floor_id = ?", floorID).
		Order("name ASC").
		Find(&roomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rooms by floor")
	}

	return mapRooms(roomModels), nil
}

// Save upserts a room.
func (repo *roomRepository) Save(ctx context.Context, room *entity.Room) error {
	roomM := fromRoomDomain(room)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(roomM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFloorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save room")
	}

	return nil
}

// Delete removes a room by id.
func (repo *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.RoomModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("room still has equipment")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete room")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

func mapRooms(roomModels []*model.RoomModel) []*entity.Room {
	rooms := make([]*entity.Room, 0, len(roomModels))
	for _, roomM := range roomModels {
		rooms = append(rooms, toRoomDomain(roomM))
	}

	return rooms
}

func toRoomDomain(data *model.RoomModel) *entity.Room {
	return &entity.Room{
		ID:        data.ID,
		Name:      data.Name,
		FloorID:   data.FloorID,
		Capacity:  data.Capacity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRoomDomain(data *entity.Room) *model.RoomModel {
	return &model.RoomModel{
		ID:        data.ID,
		Name:      data.Name,
		FloorID:   data.FloorID,
		Capacity:  data.Capacity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
