package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	due := time.Now().UTC().Add(24 * time.Hour)

	t.Run("creates task in todo bucket", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(1, "Write report", "Quarterly numbers", "HIGH", due)
		require.NoError(t, err)

		assert.Equal(t, TaskStatusTodo, task.Status)
		assert.Equal(t, int64(1), task.UserID)
		assert.False(t, task.InCart())
		assert.False(t, task.Offered())
	})

	tests := []struct {
		name     string
		userID   int64
		title    string
		priority string
		wantErr  error
	}{
		{"empty title", 1, "", "HIGH", ErrEmptyTaskTitle},
		{"empty priority", 1, "Write report", "", ErrEmptyTaskPriority},
		{"missing owner", 0, "Write report", "HIGH", ErrEmptyTaskOwner},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTask(tt.userID, tt.title, "", tt.priority, due)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskUpdateStatus(t *testing.T) {
	t.Parallel()

	task, err := NewTask(1, "Write report", "", "LOW", time.Now())
	require.NoError(t, err)

	require.NoError(t, task.UpdateStatus(TaskStatusCart))
	assert.True(t, task.InCart())

	require.NoError(t, task.UpdateStatus(TaskStatusOffered))
	assert.True(t, task.Offered())
	assert.False(t, task.InCart())

	assert.ErrorIs(t, task.UpdateStatus("done"), ErrInvalidTaskStatus)
	assert.Equal(t, TaskStatusOffered, task.Status)
}

func TestCommentValidate(t *testing.T) {
	t.Parallel()

	t.Run("creates valid comment", func(t *testing.T) {
		t.Parallel()
		comment, err := NewComment(2, 3, "Looks good")
		require.NoError(t, err)
		assert.Equal(t, int64(2), comment.TaskID)
		assert.Equal(t, int64(3), comment.AuthorID)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		_, err := NewComment(2, 3, "")
		assert.ErrorIs(t, err, ErrEmptyCommentContent)
	})

	t.Run("update content bumps timestamp", func(t *testing.T) {
		t.Parallel()
		comment, err := NewComment(2, 3, "first")
		require.NoError(t, err)

		before := comment.UpdatedAt
		time.Sleep(time.Millisecond)
		require.NoError(t, comment.UpdateContent("second"))
		assert.Equal(t, "second", comment.Content)
		assert.True(t, comment.UpdatedAt.After(before))
	})
}
