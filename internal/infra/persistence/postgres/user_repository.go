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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindAll retrieves every user ordered by creation time. Favorites are not
// loaded for listings; use FindByID when the favorites set matters.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM, nil))
	}

	return users, nil
}

// FindByID retrieves a user by their unique ID, favorites included.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	favorites, err := repo.loadFavorites(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserDomain(&userM, favorites), nil
}

// FindByEmail retrieves a user by their email address, favorites included.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	favorites, err := repo.loadFavorites(ctx, userM.ID)
	if err != nil {
		return nil, err
	}

	return toUserDomain(&userM, favorites), nil
}

// Save upserts a user. The favorites set is managed separately through
// AddFavorite and RemoveFavorite and is never written here.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save user")
	}

	return nil
}

// AddFavorite records equipment in the user's favorites set. The composite
// primary key plus DoNothing makes a repeated add a no-op.
func (repo *userRepository) AddFavorite(ctx context.Context, userID, equipmentID uuid.UUID) error {
	favoriteM := &model.UserFavoriteModel{
		UserID:      userID,
		EquipmentID: equipmentID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favoriteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEquipmentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite drops equipment from the user's favorites set. Removing an
// absent pair succeeds without error.
func (repo *userRepository) RemoveFavorite(ctx context.Context, userID, equipmentID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND equipment_id = ?", userID, equipmentID).
		Delete(&model.UserFavoriteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove favorite")
	}

	return nil
}

func (repo *userRepository) loadFavorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var favoriteModels []*model.UserFavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load user favorites")
	}

	favorites := make([]uuid.UUID, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, favoriteM.EquipmentID)
	}

	return favorites, nil
}

func toUserDomain(data *model.UserModel, favorites []uuid.UUID) *entity.User {
	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Favorites:    favorites,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
