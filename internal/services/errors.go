package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/todo-api/internal/constants"
)

var (
	ErrUsernameRequired   = errors.New("username header is required")
	ErrUnknownUsername    = errors.New("username does not exist")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user id does not exist")
	ErrAlreadyPro         = errors.New("pro plan is already activated")
	ErrQuotaExceeded      = errors.New("free account todo limit reached")
	ErrInvalidTodoID      = errors.New("invalid id, should be a uuid v4")
	ErrTodoNotFound       = errors.New("todo does not exist")
	ErrNameRequired       = errors.New("name is required")
	ErrTitleRequired      = errors.New("title is required")
	ErrFailedToCreateUser = errors.New("failed to create user")
	ErrFailedToSaveTodo   = errors.New("failed to save todo")
)

// QuotaExceededError reports how many todos a free user already holds.
type QuotaExceededError struct {
	Count int
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("free account max todos is %d, you have %d", e.Limit, e.Count)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

func newQuotaExceededError(count int) error {
	return &QuotaExceededError{Count: count, Limit: constants.FreeTierTodoLimit}
}
