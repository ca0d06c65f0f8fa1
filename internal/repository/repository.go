package repository

import (
	"errors"

	"github.com/yukikurage/todo-api/internal/models"
)

var (
	// ErrNotFound is returned when a user or todo does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateUsername is returned when creating a user whose username is already taken.
	ErrDuplicateUsername = errors.New("repository: username already exists")
)

// UserRepository defines the interface for user and todo data access.
// Returned users are detached copies; changes must go through the
// repository to be stored.
type UserRepository interface {
	// Create stores a new user
	Create(user *models.User) error

	// FindByID finds a user by ID, todos in insertion order
	FindByID(id string) (*models.User, error)

	// FindByUsername finds a user by username, todos in insertion order
	FindByUsername(username string) (*models.User, error)

	// SetPro marks the user as pro
	SetPro(userID string) error

	// AddTodo appends a todo to the end of the user's list
	AddTodo(userID string, todo *models.Todo) error

	// UpdateTodo overwrites the stored title, deadline and done flag
	UpdateTodo(todo *models.Todo) error

	// DeleteTodo removes a todo from the user's list
	DeleteTodo(userID, todoID string) error

	// Count returns the number of registered users
	Count() (int64, error)
}
