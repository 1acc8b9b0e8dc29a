package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/store"
)

// TaskInput carries the caller-supplied fields of a task for create and
// update operations.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     time.Time
}

// CommentView pairs a comment with its author's username for display.
type CommentView struct {
	Comment    *domain.Comment
	AuthorName string
}

// TaskService provides task-related operations, including the status-bucket
// transitions that back the cart and offered views.
type TaskService interface {
	// ListAll retrieves every task, most recently created first.
	ListAll(ctx context.Context) ([]*domain.Task, error)

	// ListForUser retrieves all tasks owned by the given user.
	ListForUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// CartTasks retrieves the user's tasks sitting in the cart bucket.
	CartTasks(ctx context.Context, userID int64) ([]*domain.Task, error)

	// OfferedTasks retrieves the user's tasks sitting in the offered bucket.
	OfferedTasks(ctx context.Context, userID int64) ([]*domain.Task, error)

	// GetTask retrieves a single task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask creates a new task in the todo bucket owned by the given
	// user. Returns validation errors for invalid input.
	CreateTask(ctx context.Context, ownerID int64, input TaskInput) (*domain.Task, error)

	// UpdateTask replaces the caller-editable fields of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, input TaskInput) (*domain.Task, error)

	// DeleteTask removes a task and its comments.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// AddToCart moves the task into the cart bucket.
	AddToCart(ctx context.Context, id int64) (*domain.Task, error)

	// RemoveFromCart moves the task out of the cart back to todo.
	RemoveFromCart(ctx context.Context, id int64) (*domain.Task, error)

	// AddToOffered moves the task into the offered bucket.
	AddToOffered(ctx context.Context, id int64) (*domain.Task, error)

	// RemoveFromOffered moves the task out of the offered bucket back to todo.
	RemoveFromOffered(ctx context.Context, id int64) (*domain.Task, error)

	// CommentsForTask retrieves the task's comments with their authors'
	// usernames, oldest first.
	CommentsForTask(ctx context.Context, taskID int64) ([]CommentView, error)
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore    store.TaskStore
	commentStore store.CommentStore
	userStore    store.UserStore
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	commentStore store.CommentStore,
	userStore store.UserStore,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "taskStore cannot be nil"}
	}
	if commentStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "commentStore cannot be nil"}
	}
	if userStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "userStore cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore:    taskStore,
		commentStore: commentStore,
		userStore:    userStore,
		logger:       logger.With(slog.String("component", "task_service")),
	}, nil
}

func (s *taskServiceImpl) ListAll(ctx context.Context) ([]*domain.Task, error) {
	return s.taskStore.ListAll(ctx)
}

func (s *taskServiceImpl) ListForUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return s.taskStore.ListByUser(ctx, userID)
}

func (s *taskServiceImpl) CartTasks(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return s.taskStore.ListByUserAndStatus(ctx, userID, domain.TaskStatusCart)
}

func (s *taskServiceImpl) OfferedTasks(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return s.taskStore.ListByUserAndStatus(ctx, userID, domain.TaskStatusOffered)
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, &ServiceError{Operation: "get_task", Message: "failed to retrieve task", Err: err}
	}
	return task, nil
}

func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID int64,
	input TaskInput,
) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, input.Title, input.Description, input.Priority, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, &ServiceError{Operation: "create_task", Message: "failed to save task", Err: err}
	}

	s.logger.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", ownerID))
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	input TaskInput,
) (*domain.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Priority = input.Priority
	task.DueDate = input.DueDate

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, &ServiceError{Operation: "update_task", Message: "failed to update task", Err: err}
	}

	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return &ServiceError{Operation: "delete_task", Message: "failed to delete task", Err: err}
	}

	s.logger.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

func (s *taskServiceImpl) AddToCart(ctx context.Context, id int64) (*domain.Task, error) {
	return s.transition(ctx, id, domain.TaskStatusCart, "add_to_cart")
}

func (s *taskServiceImpl) RemoveFromCart(ctx context.Context, id int64) (*domain.Task, error) {
	return s.transition(ctx, id, domain.TaskStatusTodo, "remove_from_cart")
}

func (s *taskServiceImpl) AddToOffered(ctx context.Context, id int64) (*domain.Task, error) {
	return s.transition(ctx, id, domain.TaskStatusOffered, "add_to_offered")
}

func (s *taskServiceImpl) RemoveFromOffered(ctx context.Context, id int64) (*domain.Task, error) {
	return s.transition(ctx, id, domain.TaskStatusTodo, "remove_from_offered")
}

// transition moves a task to the given status bucket and persists it.
func (s *taskServiceImpl) transition(
	ctx context.Context,
	id int64,
	status domain.TaskStatus,
	operation string,
) (*domain.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := task.UpdateStatus(status); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, &ServiceError{Operation: operation, Message: "failed to update task status", Err: err}
	}

	s.logger.Debug("task moved",
		slog.Int64("task_id", id),
		slog.String("status", string(status)))
	return task, nil
}

func (s *taskServiceImpl) CommentsForTask(ctx context.Context, taskID int64) ([]CommentView, error) {
	comments, err := s.commentStore.ListByTask(ctx, taskID)
	if err != nil {
		return nil, &ServiceError{Operation: "list_comments", Message: "failed to list comments", Err: err}
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		view := CommentView{Comment: comment}

		author, err := s.userStore.GetByID(ctx, comment.AuthorID)
		switch {
		case err == nil:
			view.AuthorName = author.Username
		case errors.Is(err, store.ErrNotFound):
			// Author account deleted after commenting; the comment stays.
		default:
			return nil, &ServiceError{Operation: "list_comments", Message: "failed to resolve author", Err: err}
		}

		views = append(views, view)
	}

	return views, nil
}
