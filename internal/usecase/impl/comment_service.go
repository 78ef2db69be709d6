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

// commentService implements the CommentUsecase interface.
type commentService struct {
	gate     actorGate
	comments repository.EquipmentCommentRepository
	users    repository.UserRepository
	views    service.ViewCache
	logger   *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	userRepo repository.UserRepository,
	commentRepo repository.EquipmentCommentRepository,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		gate:     actorGate{users: userRepo},
		comments: commentRepo,
		users:    userRepo,
		views:    views,
		logger:   logger,
	}
}

// ListComments retrieves the comments on a piece of equipment, newest first,
// with author snapshots attached for rendering.
func (srv *commentService) ListComments(ctx context.Context, equipmentID uuid.UUID) ([]*entity.EquipmentComment, error) {
	comments, err := srv.comments.FindByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return attachCommentAuthors(ctx, srv.users, comments)
}

// attachCommentAuthors returns copies of the comments with the author
// snapshot attached. Authors repeat across comments, so each user is
// resolved once.
func attachCommentAuthors(ctx context.Context, users repository.UserRepository, comments []*entity.EquipmentComment) ([]*entity.EquipmentComment, error) {
	authors := make(map[uuid.UUID]*entity.CommentAuthor)
	enriched := make([]*entity.EquipmentComment, 0, len(comments))
	for _, comment := range comments {
		author, ok := authors[comment.UserID]
		if !ok {
			user, err := users.FindByID(ctx, comment.UserID)
			if err != nil {
				if !errors.Is(err, repository.ErrUserNotFound) {
					return nil, errors.Wrap(err, "failed to resolve comment author")
				}
				// Deleted accounts leave their comments behind without a name.
			} else {
				author = &entity.CommentAuthor{ID: user.ID, Name: user.Name}
			}
			authors[comment.UserID] = author
		}
		enriched = append(enriched, comment.WithAuthor(author))
	}

	return enriched, nil
}

// CreateComment validates and persists a remark on a piece of equipment.
// Any authenticated user may comment.
func (srv *commentService) CreateComment(ctx context.Context, actorID uuid.UUID, input *usecase.CreateCommentInput) (*entity.EquipmentComment, error) {
	actor, err := srv.gate.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	comment, err := entity.NewEquipmentComment(uuid.New(), input.EquipmentID, actor.ID, input.Content, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.comments.Save(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("equipment not found")
		}

		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.logger.Info("Comment created", "commentID", comment.ID, "equipmentID", comment.EquipmentID, "actorID", actorID)
	srv.views.Invalidate(equipmentDetailView(comment.EquipmentID))

	return comment.WithAuthor(&entity.CommentAuthor{ID: actor.ID, Name: actor.Name}), nil
}

// DeleteComment removes a comment. The author may always delete their own
// remark; otherwise an editorial role is required.
func (srv *commentService) DeleteComment(ctx context.Context, actorID, id uuid.UUID) error {
	actor, err := srv.gate.actor(ctx, actorID)
	if err != nil {
		return err
	}

	comment, err := srv.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentCommentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("comment not found")
		}

		return errors.Wrap(err, "failed to find comment")
	}

	if comment.UserID != actor.ID && !service.CanManageEquipment(actor) {
		return domainerrors.ErrForbidden.WrapMessage("only the author or an editorial role may delete a comment")
	}

	if err := srv.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEquipmentCommentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("comment not found")
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.logger.Info("Comment deleted", "commentID", id, "actorID", actorID)
	srv.views.Invalidate(equipmentDetailView(comment.EquipmentID))

	return nil
}
