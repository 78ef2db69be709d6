package impl

import (
	"context"
	"testing"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	mockRepo "atrium/internal/mocks/repository"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service  usecase.CommentUsecase
	users    *mockRepo.MockUserRepository
	comments *mockRepo.MockEquipmentCommentRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	comments := mockRepo.NewMockEquipmentCommentRepository(t)
	service := NewCommentService(users, comments, newStubViewCache(), testLogger())

	return commentServiceFixtures{
		service:  service,
		users:    users,
		comments: comments,
	}
}

func TestCommentService_CreateComment_MemberAllowed(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	equipmentID := uuid.New()

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.comments.On("Save", ctx, mock.AnythingOfType("*entity.EquipmentComment")).Return(nil)

	comment, err := fx.service.CreateComment(ctx, member.ID, &usecase.CreateCommentInput{
		EquipmentID: equipmentID,
		Content:     "Left rear caster is loose",
	})

	require.NoError(t, err)
	assert.Equal(t, member.ID, comment.UserID)
	assert.Equal(t, "Left rear caster is loose", comment.Content)
	require.NotNil(t, comment.Author)
	assert.Equal(t, member.Name, comment.Author.Name)
}

func TestCommentService_DeleteComment_AuthorAllowed(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	comment := &entity.EquipmentComment{
		ID:          uuid.New(),
		EquipmentID: uuid.New(),
		UserID:      member.ID,
		Content:     "Old remark",
	}

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.comments.On("FindByID", ctx, comment.ID).Return(comment, nil)
	fx.comments.On("Delete", ctx, comment.ID).Return(nil)

	err := fx.service.DeleteComment(ctx, member.ID, comment.ID)

	require.NoError(t, err)
}

func TestCommentService_DeleteComment_StrangerForbidden(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	member := testUser(entity.RoleMember)
	comment := &entity.EquipmentComment{
		ID:          uuid.New(),
		EquipmentID: uuid.New(),
		UserID:      uuid.New(),
		Content:     "Someone else's remark",
	}

	fx.users.On("FindByID", ctx, member.ID).Return(member, nil)
	fx.comments.On("FindByID", ctx, comment.ID).Return(comment, nil)

	err := fx.service.DeleteComment(ctx, member.ID, comment.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCommentService_DeleteComment_EditorOverridesOwnership(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	editor := testUser(entity.RoleEditor)
	comment := &entity.EquipmentComment{
		ID:          uuid.New(),
		EquipmentID: uuid.New(),
		UserID:      uuid.New(),
		Content:     "Someone else's remark",
	}

	fx.users.On("FindByID", ctx, editor.ID).Return(editor, nil)
	fx.comments.On("FindByID", ctx, comment.ID).Return(comment, nil)
	fx.comments.On("Delete", ctx, comment.ID).Return(nil)

	err := fx.service.DeleteComment(ctx, editor.ID, comment.ID)

	require.NoError(t, err)
}

func TestCommentService_ListComments_AttachesAuthors(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	author := testUser(entity.RoleMember)
	equipmentID := uuid.New()
	stored := []*entity.EquipmentComment{
		{ID: uuid.New(), EquipmentID: equipmentID, UserID: author.ID, Content: "First"},
		{ID: uuid.New(), EquipmentID: equipmentID, UserID: author.ID, Content: "Second"},
	}

	fx.comments.On("FindByEquipment", ctx, equipmentID).Return(stored, nil)
	// One lookup serves both comments.
	fx.users.On("FindByID", ctx, author.ID).Return(author, nil).Once()

	comments, err := fx.service.ListComments(ctx, equipmentID)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	for _, comment := range comments {
		require.NotNil(t, comment.Author)
		assert.Equal(t, author.Name, comment.Author.Name)
	}
}
