// Package api contains the HTTP handlers, request/response models, and the
// error translation layer for the REST API.
package api

import (
	"time"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/service"
)

// SignupRequest holds the signup request parameters.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest holds the login request parameters.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user. It never carries credentials.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse holds the authentication response returned on signup and login.
type AuthResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Message string       `json:"message,omitempty"`
}

// TaskRequest holds the task creation/update request parameters.
type TaskRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"    validate:"required"`
	DueDate     time.Time `json:"due_date"`
}

// CommentResponse is the public view of a comment, with the author's
// username resolved for display.
type CommentResponse struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	TaskID     int64     `json:"task_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TaskResponse is the public view of a task. InCart and Offered are derived
// from the status bucket the task currently sits in.
type TaskResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     time.Time         `json:"due_date"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	UserID      int64             `json:"user_id"`
	InCart      bool              `json:"in_cart"`
	Offered     bool              `json:"offered"`
	Comments    []CommentResponse `json:"comments,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// CommentRequest holds the comment creation/update request parameters.
type CommentRequest struct {
	TaskID  int64  `json:"task_id"`
	Content string `json:"content" validate:"required"`
}

// NewUserResponse builds the public view of a user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// NewTaskResponse builds the public view of a task without comments.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		Status:      string(task.Status),
		UserID:      task.UserID,
		InCart:      task.InCart(),
		Offered:     task.Offered(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// NewTaskResponseWithComments builds the public view of a task with its
// comment thread embedded.
func NewTaskResponseWithComments(task *domain.Task, comments []service.CommentView) TaskResponse {
	resp := NewTaskResponse(task)
	for _, view := range comments {
		resp.Comments = append(resp.Comments, NewCommentResponse(view))
	}
	return resp
}

// NewCommentResponse builds the public view of a comment.
func NewCommentResponse(view service.CommentView) CommentResponse {
	return CommentResponse{
		ID:         view.Comment.ID,
		Content:    view.Comment.Content,
		TaskID:     view.Comment.TaskID,
		AuthorID:   view.Comment.AuthorID,
		AuthorName: view.AuthorName,
		CreatedAt:  view.Comment.CreatedAt,
	}
}

// NewTaskListResponse builds the public view of a task list.
func NewTaskListResponse(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}
	return responses
}
