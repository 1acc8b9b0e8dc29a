package mocks

import (
	"context"
	"database/sql"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. It defaults to an
// in-memory store; function fields override behavior per test.
type MockTaskStore struct {
	CreateFn              func(ctx context.Context, task *domain.Task) error
	GetByIDFn             func(ctx context.Context, id int64) (*domain.Task, error)
	ListAllFn             func(ctx context.Context) ([]*domain.Task, error)
	ListByUserFn          func(ctx context.Context, userID int64) ([]*domain.Task, error)
	ListByUserAndStatusFn func(ctx context.Context, userID int64, status domain.TaskStatus) ([]*domain.Task, error)
	UpdateFn              func(ctx context.Context, task *domain.Task) error
	DeleteFn              func(ctx context.Context, id int64) error

	Tasks  map[int64]*domain.Task
	nextID int64
}

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{Tasks: make(map[int64]*domain.Task)}
}

// Create implements the store.TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if err := task.Validate(); err != nil {
		return err
	}
	m.nextID++
	task.ID = m.nextID
	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the store.TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if task, ok := m.Tasks[id]; ok {
		return task, nil
	}
	return nil, store.ErrTaskNotFound
}

// ListAll implements the store.TaskStore interface.
func (m *MockTaskStore) ListAll(ctx context.Context) ([]*domain.Task, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, task := range m.Tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// ListByUser implements the store.TaskStore interface.
func (m *MockTaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	var tasks []*domain.Task
	for _, task := range m.Tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// ListByUserAndStatus implements the store.TaskStore interface.
func (m *MockTaskStore) ListByUserAndStatus(
	ctx context.Context,
	userID int64,
	status domain.TaskStatus,
) ([]*domain.Task, error) {
	if m.ListByUserAndStatusFn != nil {
		return m.ListByUserAndStatusFn(ctx, userID, status)
	}
	var tasks []*domain.Task
	for _, task := range m.Tasks {
		if task.UserID == userID && task.Status == status {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// Update implements the store.TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	if _, ok := m.Tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the store.TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// WithTx implements the store.TaskStore interface.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	CreateFn     func(ctx context.Context, comment *domain.Comment) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Comment, error)
	ListByTaskFn func(ctx context.Context, taskID int64) ([]*domain.Comment, error)
	UpdateFn     func(ctx context.Context, comment *domain.Comment) error
	DeleteFn     func(ctx context.Context, id int64) error

	Comments map[int64]*domain.Comment
	nextID   int64
}

// NewMockCommentStore creates a new mock store with initialized defaults.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{Comments: make(map[int64]*domain.Comment)}
}

// Create implements the store.CommentStore interface.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	if err := comment.Validate(); err != nil {
		return err
	}
	m.nextID++
	comment.ID = m.nextID
	m.Comments[comment.ID] = comment
	return nil
}

// GetByID implements the store.CommentStore interface.
func (m *MockCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if comment, ok := m.Comments[id]; ok {
		return comment, nil
	}
	return nil, store.ErrCommentNotFound
}

// ListByTask implements the store.CommentStore interface.
func (m *MockCommentStore) ListByTask(ctx context.Context, taskID int64) ([]*domain.Comment, error) {
	if m.ListByTaskFn != nil {
		return m.ListByTaskFn(ctx, taskID)
	}
	var comments []*domain.Comment
	for _, comment := range m.Comments {
		if comment.TaskID == taskID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// Update implements the store.CommentStore interface.
func (m *MockCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, comment)
	}
	if _, ok := m.Comments[comment.ID]; !ok {
		return store.ErrCommentNotFound
	}
	m.Comments[comment.ID] = comment
	return nil
}

// Delete implements the store.CommentStore interface.
func (m *MockCommentStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Comments[id]; !ok {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, id)
	return nil
}

// WithTx implements the store.CommentStore interface.
func (m *MockCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return m
}
