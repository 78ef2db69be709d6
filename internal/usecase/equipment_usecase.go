package usecase

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// EquipmentUsecase defines the interface for equipment-related business operations.
type EquipmentUsecase interface {
	ListEquipment(ctx context.Context, roomID uuid.UUID) ([]*entity.Equipment, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*entity.Equipment, error)
	GetEquipmentDetail(ctx context.Context, id uuid.UUID) (*EquipmentDetail, error)
	CreateEquipment(ctx context.Context, actorID uuid.UUID, input *CreateEquipmentInput) (*entity.Equipment, error)
	UpdateEquipment(ctx context.Context, actorID, id uuid.UUID, input *UpdateEquipmentInput) (*entity.Equipment, error)
	DeleteEquipment(ctx context.Context, actorID, id uuid.UUID) error
	GenerateAssetTag(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// EquipmentCategoryUsecase defines the interface for category-related business operations.
type EquipmentCategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.EquipmentCategory, error)
	CreateCategory(ctx context.Context, actorID uuid.UUID, input *CreateCategoryInput) (*entity.EquipmentCategory, error)
	UpdateCategory(ctx context.Context, actorID, id uuid.UUID, input *UpdateCategoryInput) (*entity.EquipmentCategory, error)
	DeleteCategory(ctx context.Context, actorID, id uuid.UUID) error
}

// EquipmentDetail aggregates everything the equipment detail view renders.
type EquipmentDetail struct {
	Equipment    *entity.Equipment           `json:"equipment"`
	Category     *entity.EquipmentCategory   `json:"category"`
	Room         *entity.Room                `json:"room"`
	Comments     []*entity.EquipmentComment  `json:"comments"`
	Reservations []*entity.Reservation       `json:"reservations"`
	Maintenance  []*entity.MaintenanceRecord `json:"maintenance"`
}

// --- Input DTOs ---

// CreateEquipmentInput defines the data required to create equipment.
type CreateEquipmentInput struct {
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
	RoomID     uuid.UUID `json:"room_id"`
}

// UpdateEquipmentInput defines the data required to update equipment.
// Equipment may be recategorised or moved to another room.
type UpdateEquipmentInput struct {
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
	RoomID     uuid.UUID `json:"room_id"`
}

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	CategoryMajor string `json:"category_major"`
	CategoryMinor string `json:"category_minor"`
}

// UpdateCategoryInput defines the data required to update a category.
type UpdateCategoryInput struct {
	CategoryMajor string `json:"category_major"`
	CategoryMinor string `json:"category_minor"`
}
