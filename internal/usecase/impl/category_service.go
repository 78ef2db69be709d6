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

// categoryService implements the EquipmentCategoryUsecase interface.
type categoryService struct {
	gate       actorGate
	categories repository.EquipmentCategoryRepository
	views      service.ViewCache
	logger     *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	userRepo repository.UserRepository,
	categoryRepo repository.EquipmentCategoryRepository,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.EquipmentCategoryUsecase {
	return &categoryService{
		gate:       actorGate{users: userRepo},
		categories: categoryRepo,
		views:      views,
		logger:     logger,
	}
}

// ListCategories retrieves every category, serving the cached view when warm.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.EquipmentCategory, error) {
	if cached, ok := srv.views.Get(viewCategories); ok {
		if categories, ok := cached.([]*entity.EquipmentCategory); ok {
			return categories, nil
		}
	}

	categories, err := srv.categories.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	srv.views.Set(viewCategories, categories)

	return categories, nil
}

// CreateCategory validates and persists a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, actorID uuid.UUID, input *usecase.CreateCategoryInput) (*entity.EquipmentCategory, error) {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return nil, err
	}

	category, err := entity.NewEquipmentCategory(uuid.New(), input.CategoryMajor, input.CategoryMinor, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.categories.Save(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.logger.Info("Category created", "categoryID", category.ID, "actorID", actorID)
	srv.views.Invalidate(categoryViews()...)

	return category, nil
}

// UpdateCategory validates and persists changes to an existing category.
func (srv *categoryService) UpdateCategory(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.EquipmentCategory, error) {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return nil, err
	}

	existing, err := srv.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentCategoryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("equipment category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	category, err := entity.NewEquipmentCategory(id, input.CategoryMajor, input.CategoryMinor, time.Now())
	if err != nil {
		return nil, err
	}
	category.CreatedAt = existing.CreatedAt

	if err := srv.categories.Save(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	srv.logger.Info("Category updated", "categoryID", id, "actorID", actorID)
	srv.views.Invalidate(categoryViews()...)

	return category, nil
}

// DeleteCategory removes a category. Categories still referenced by
// equipment cannot be deleted.
func (srv *categoryService) DeleteCategory(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return err
	}

	if err := srv.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEquipmentCategoryNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("equipment category not found")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.logger.Info("Category deleted", "categoryID", id, "actorID", actorID)
	srv.views.Invalidate(categoryViews()...)

	return nil
}
