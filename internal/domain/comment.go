package domain

import "time"

// Comment represents a remark a user attached to a task.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	TaskID    int64     `json:"task_id"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewComment creates a new Comment on the given task by the given author.
// Returns an error if validation fails.
func NewComment(taskID, authorID int64, content string) (*Comment, error) {
	now := time.Now().UTC()
	comment := &Comment{
		Content:   content,
		TaskID:    taskID,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.Content == "" {
		return ErrEmptyCommentContent
	}

	if c.TaskID == 0 {
		return ErrEmptyCommentTask
	}

	if c.AuthorID == 0 {
		return ErrEmptyCommentAuthor
	}

	return nil
}

// UpdateContent replaces the comment body and bumps the UpdatedAt timestamp.
func (c *Comment) UpdateContent(content string) error {
	if content == "" {
		return ErrEmptyCommentContent
	}

	c.Content = content
	c.UpdatedAt = time.Now().UTC()
	return nil
}
