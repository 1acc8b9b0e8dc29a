package store

import (
	"context"
	"database/sql"

	"github.com/taskflow/taskflow-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task and fills in the store-assigned ID.
	// Returns ErrInvalidEntity when the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListAll retrieves every task, most recently created first.
	ListAll(ctx context.Context) ([]*domain.Task, error)

	// ListByUser retrieves all tasks owned by the given user.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// ListByUserAndStatus retrieves the user's tasks sitting in the given
	// status bucket.
	ListByUserAndStatus(ctx context.Context, userID int64, status domain.TaskStatus) ([]*domain.Task, error)

	// Update modifies an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task and its comments.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment and fills in the store-assigned ID.
	// Returns ErrInvalidEntity when the task or author does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its unique ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// ListByTask retrieves all comments on the given task, oldest first.
	ListByTask(ctx context.Context, taskID int64) ([]*domain.Comment, error)

	// Update modifies an existing comment's content.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CommentStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) CommentStore
}
