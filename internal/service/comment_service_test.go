package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/mocks"
)

func newTestCommentService(t *testing.T) (CommentService, *mocks.MockTaskStore, *mocks.MockCommentStore) {
	t.Helper()

	taskStore := mocks.NewMockTaskStore()
	commentStore := mocks.NewMockCommentStore()

	svc, err := NewCommentService(commentStore, taskStore, nil)
	require.NoError(t, err)

	return svc, taskStore, commentStore
}

func seedTask(t *testing.T, taskStore *mocks.MockTaskStore, ownerID int64) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(ownerID, "write report", "", "high", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, taskStore.Create(context.Background(), task))
	return task
}

func TestNewCommentService_NilDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewCommentService(nil, mocks.NewMockTaskStore(), nil)
	assert.Error(t, err)

	_, err = NewCommentService(mocks.NewMockCommentStore(), nil, nil)
	assert.Error(t, err)
}

func TestCommentService_CreateComment(t *testing.T) {
	t.Parallel()

	svc, taskStore, _ := newTestCommentService(t)
	task := seedTask(t, taskStore, 7)

	comment, err := svc.CreateComment(context.Background(), task.ID, 7, "looks good")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, task.ID, comment.TaskID)
	assert.Equal(t, int64(7), comment.AuthorID)
}

func TestCommentService_CreateComment_TaskMissing(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestCommentService(t)

	_, err := svc.CreateComment(context.Background(), 99, 7, "looks good")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestCommentService_CreateComment_EmptyContent(t *testing.T) {
	t.Parallel()

	svc, taskStore, _ := newTestCommentService(t)
	task := seedTask(t, taskStore, 7)

	_, err := svc.CreateComment(context.Background(), task.ID, 7, "")
	assert.ErrorIs(t, err, domain.ErrEmptyCommentContent)
}

func TestCommentService_UpdateComment(t *testing.T) {
	t.Parallel()

	svc, taskStore, _ := newTestCommentService(t)
	task := seedTask(t, taskStore, 7)

	comment, err := svc.CreateComment(context.Background(), task.ID, 7, "looks good")
	require.NoError(t, err)

	updated, err := svc.UpdateComment(context.Background(), comment.ID, "looks great")
	require.NoError(t, err)
	assert.Equal(t, "looks great", updated.Content)
}

func TestCommentService_UpdateComment_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestCommentService(t)

	_, err := svc.UpdateComment(context.Background(), 99, "anything")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	svc, taskStore, commentStore := newTestCommentService(t)
	task := seedTask(t, taskStore, 7)

	comment, err := svc.CreateComment(context.Background(), task.ID, 7, "looks good")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(context.Background(), comment.ID))
	assert.Empty(t, commentStore.Comments)

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), comment.ID), ErrCommentNotFound)
}
