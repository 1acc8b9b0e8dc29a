package domain

import "time"

// TaskStatus represents the bucket a task currently sits in.
type TaskStatus string

// Possible task status values
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusCart       TaskStatus = "cart"
	TaskStatusOffered    TaskStatus = "offered"
	TaskStatusInProgress TaskStatus = "in_progress"
)

// Task represents a unit of work owned by a user. Tasks move between
// status buckets (todo, cart, offered, in_progress) over their lifetime.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"due_date"`
	Priority    string     `json:"priority"`
	Status      TaskStatus `json:"status"`
	UserID      int64      `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task in the todo bucket owned by the given user.
// Returns an error if validation fails.
func NewTask(userID int64, title, description, priority string, dueDate time.Time) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      TaskStatusTodo,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.Priority == "" {
		return ErrEmptyTaskPriority
	}

	if t.UserID == 0 {
		return ErrEmptyTaskOwner
	}

	if !isValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// UpdateStatus moves the task to a new bucket and bumps the UpdatedAt
// timestamp. Returns an error if the new status is invalid.
func (t *Task) UpdateStatus(status TaskStatus) error {
	if !isValidTaskStatus(status) {
		return ErrInvalidTaskStatus
	}

	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// InCart reports whether the task currently sits in the cart bucket.
func (t *Task) InCart() bool {
	return t.Status == TaskStatusCart
}

// Offered reports whether the task currently sits in the offered bucket.
func (t *Task) Offered() bool {
	return t.Status == TaskStatusOffered
}

// isValidTaskStatus checks if the given status is a valid TaskStatus.
func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusTodo, TaskStatusCart, TaskStatusOffered, TaskStatusInProgress:
		return true
	default:
		return false
	}
}
