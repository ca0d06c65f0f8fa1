package repository

import (
	"sync"

	"github.com/yukikurage/todo-api/internal/models"
)

// MemoryUserRepository keeps users in an ordered slice in process memory.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []*models.User
}

// NewMemoryUserRepository creates an empty in-memory UserRepository
func NewMemoryUserRepository() UserRepository {
	return &MemoryUserRepository{}
}

// Create stores a copy of user
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return ErrDuplicateUsername
		}
	}

	stored := user.Clone()
	for i := range stored.Todos {
		stored.Todos[i].UserID = stored.ID
		stored.Todos[i].Seq = int64(i + 1)
	}
	r.users = append(r.users, stored)
	return nil
}

// FindByID finds a user by ID
func (r *MemoryUserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user := r.findByID(id)
	if user == nil {
		return nil, ErrNotFound
	}
	return user.Clone(), nil
}

// FindByUsername finds a user by username
func (r *MemoryUserRepository) FindByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// SetPro marks the user as pro
func (r *MemoryUserRepository) SetPro(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findByID(userID)
	if user == nil {
		return ErrNotFound
	}
	user.Pro = true
	return nil
}

// AddTodo appends a todo to the user's list and sets its owner and sequence
func (r *MemoryUserRepository) AddTodo(userID string, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findByID(userID)
	if user == nil {
		return ErrNotFound
	}

	todo.UserID = userID
	todo.Seq = 1
	if n := len(user.Todos); n > 0 {
		todo.Seq = user.Todos[n-1].Seq + 1
	}
	user.Todos = append(user.Todos, *todo)
	return nil
}

// UpdateTodo overwrites title, deadline and done of a stored todo
func (r *MemoryUserRepository) UpdateTodo(todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findByID(todo.UserID)
	if user == nil {
		return ErrNotFound
	}

	stored, ok := user.FindTodo(todo.ID)
	if !ok {
		return ErrNotFound
	}
	stored.Title = todo.Title
	stored.Deadline = todo.Deadline
	stored.Done = todo.Done
	return nil
}

// DeleteTodo removes a todo, keeping the order of the rest
func (r *MemoryUserRepository) DeleteTodo(userID, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findByID(userID)
	if user == nil {
		return ErrNotFound
	}

	for i := range user.Todos {
		if user.Todos[i].ID == todoID {
			user.Todos = append(user.Todos[:i], user.Todos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count returns the number of registered users
func (r *MemoryUserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.users)), nil
}

func (r *MemoryUserRepository) findByID(id string) *models.User {
	for _, user := range r.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}
