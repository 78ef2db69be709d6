package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEquipmentComment_Success(t *testing.T) {
	equipmentID := uuid.New()
	userID := uuid.New()

	comment, err := NewEquipmentComment(uuid.New(), equipmentID, userID, "  needs a new bulb  ", time.Now())
	require.NoError(t, err)
	assert.Equal(t, equipmentID, comment.EquipmentID)
	assert.Equal(t, userID, comment.UserID)
	assert.Equal(t, "needs a new bulb", comment.Content)
	assert.Nil(t, comment.Author)
}

func TestNewEquipmentComment_ContentRequired(t *testing.T) {
	comment, err := NewEquipmentComment(uuid.New(), uuid.New(), uuid.New(), "   ", time.Now())
	assert.Nil(t, comment)
	require.Error(t, err)
	assert.Equal(t, "content is required", err.Error())
}

func TestNewEquipmentComment_UserRequired(t *testing.T) {
	comment, err := NewEquipmentComment(uuid.New(), uuid.New(), uuid.Nil, "looks fine", time.Now())
	assert.Nil(t, comment)
	require.Error(t, err)
	assert.Equal(t, "userId is required", err.Error())
}

func TestEquipmentComment_WithAuthorCopies(t *testing.T) {
	comment, err := NewEquipmentComment(uuid.New(), uuid.New(), uuid.New(), "looks fine", time.Now())
	require.NoError(t, err)

	author := &CommentAuthor{ID: comment.UserID, Name: "Alex"}
	enriched := comment.WithAuthor(author)

	assert.Nil(t, comment.Author)
	require.NotNil(t, enriched.Author)
	assert.Equal(t, "Alex", enriched.Author.Name)
}
