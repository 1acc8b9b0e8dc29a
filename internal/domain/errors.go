package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of all domain validation errors. Callers can
// check errors.Is(err, ErrValidation) to distinguish bad input from
// infrastructure failures.
var ErrValidation = errors.New("validation failed")

// Common validation errors shared across entities.
var (
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)

	ErrEmptyTaskTitle    = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrEmptyTaskPriority = fmt.Errorf("%w: task priority cannot be empty", ErrValidation)
	ErrInvalidTaskStatus = fmt.Errorf("%w: invalid task status", ErrValidation)
	ErrEmptyTaskOwner    = fmt.Errorf("%w: task owner cannot be empty", ErrValidation)

	ErrEmptyCommentContent = fmt.Errorf("%w: comment content cannot be empty", ErrValidation)
	ErrEmptyCommentTask    = fmt.Errorf("%w: comment task cannot be empty", ErrValidation)
	ErrEmptyCommentAuthor  = fmt.Errorf("%w: comment author cannot be empty", ErrValidation)
)
