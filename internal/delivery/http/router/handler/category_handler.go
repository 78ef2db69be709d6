package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/delivery/http/response"
	"atrium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for equipment category handlers.
type CategoryHandler struct {
	uc     usecase.EquipmentCategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.EquipmentCategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// CategoryRequest represents the request body for creating or updating a category.
type CategoryRequest struct {
	CategoryMajor string `json:"category_major" validate:"required"`
	CategoryMinor string `json:"category_minor" validate:"required"`
}

// List handles listing all equipment categories.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Create handles creating a category.
func (h *CategoryHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), actor, &usecase.CreateCategoryInput{
		CategoryMajor: req.CategoryMajor,
		CategoryMinor: req.CategoryMinor,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// Update handles updating a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), actor, id, &usecase.UpdateCategoryInput{
		CategoryMajor: req.CategoryMajor,
		CategoryMinor: req.CategoryMinor,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated")
}

// Delete handles deleting a category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}
