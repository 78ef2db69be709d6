package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/delivery/http/response"
	"atrium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for equipment comment handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCommentRequest represents the request body for commenting on equipment.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListByEquipment handles listing the comments on a piece of equipment.
func (h *CommentHandler) ListByEquipment(c echo.Context) error {
	equipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.uc.ListComments(c.Request().Context(), equipmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// Create handles posting a comment on a piece of equipment.
func (h *CommentHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	equipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	comment, err := h.uc.CreateComment(c.Request().Context(), actor, &usecase.CreateCommentInput{
		EquipmentID: equipmentID,
		Content:     req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment posted")
}

// Delete handles removing a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteComment(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted")
}
