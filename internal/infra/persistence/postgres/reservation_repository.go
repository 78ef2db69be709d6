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

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// FindByID retrieves a reservation by its unique ID.
func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by ID")
	}

	return toReservationDomain(&reservationM), nil
}

// FindByEquipment retrieves the reservations of a piece of equipment ordered by start time.
func (repo *reservationRepository) FindByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("starts_at ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by equipment")
	}

	reservations := make([]*entity.Reservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// Save upserts a reservation.
func (repo *reservationRepository) Save(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(reservationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("equipment or user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save reservation")
	}

	return nil
}

// Delete removes a reservation by id.
func (repo *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReservationModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	return &entity.Reservation{
		ID:          data.ID,
		EquipmentID: data.EquipmentID,
		UserID:      data.UserID,
		Purpose:     data.Purpose,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	return &model.ReservationModel{
		ID:          data.ID,
		EquipmentID: data.EquipmentID,
		UserID:      data.UserID,
		Purpose:     data.Purpose,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
