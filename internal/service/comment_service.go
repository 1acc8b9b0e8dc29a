package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/store"
)

// CommentService provides comment-related operations.
type CommentService interface {
	// CreateComment attaches a new comment to a task.
	// Returns ErrTaskNotFound if the task does not exist.
	CreateComment(ctx context.Context, taskID, authorID int64, content string) (*domain.Comment, error)

	// UpdateComment replaces the content of an existing comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	UpdateComment(ctx context.Context, id int64, content string) (*domain.Comment, error)

	// DeleteComment removes a comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	DeleteComment(ctx context.Context, id int64) error
}

// commentServiceImpl implements the CommentService interface.
type commentServiceImpl struct {
	commentStore store.CommentStore
	taskStore    store.TaskStore
	logger       *slog.Logger
}

// NewCommentService creates a new CommentService.
// It returns an error if any of the required dependencies are nil.
func NewCommentService(
	commentStore store.CommentStore,
	taskStore store.TaskStore,
	logger *slog.Logger,
) (CommentService, error) {
	if commentStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "commentStore cannot be nil"}
	}
	if taskStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "taskStore cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &commentServiceImpl{
		commentStore: commentStore,
		taskStore:    taskStore,
		logger:       logger.With(slog.String("component", "comment_service")),
	}, nil
}

func (s *commentServiceImpl) CreateComment(
	ctx context.Context,
	taskID, authorID int64,
	content string,
) (*domain.Comment, error) {
	// Surface a clean not-found instead of a foreign key violation.
	if _, err := s.taskStore.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, &ServiceError{Operation: "create_comment", Message: "failed to check task", Err: err}
	}

	comment, err := domain.NewComment(taskID, authorID, content)
	if err != nil {
		return nil, err
	}

	if err := s.commentStore.Create(ctx, comment); err != nil {
		return nil, &ServiceError{Operation: "create_comment", Message: "failed to save comment", Err: err}
	}

	s.logger.Info("comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("task_id", taskID))
	return comment, nil
}

func (s *commentServiceImpl) UpdateComment(
	ctx context.Context,
	id int64,
	content string,
) (*domain.Comment, error) {
	comment, err := s.commentStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, &ServiceError{Operation: "update_comment", Message: "failed to retrieve comment", Err: err}
	}

	if err := comment.UpdateContent(content); err != nil {
		return nil, err
	}

	if err := s.commentStore.Update(ctx, comment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, &ServiceError{Operation: "update_comment", Message: "failed to update comment", Err: err}
	}

	return comment, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, id int64) error {
	if err := s.commentStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCommentNotFound
		}
		return &ServiceError{Operation: "delete_comment", Message: "failed to delete comment", Err: err}
	}

	s.logger.Info("comment deleted", slog.Int64("comment_id", id))
	return nil
}
