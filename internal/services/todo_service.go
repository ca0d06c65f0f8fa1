package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/utils"
)

// TodoService handles todo business logic for a resolved owner.
type TodoService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewTodoService creates a new TodoService
func NewTodoService(userRepo repository.UserRepository) *TodoService {
	return &TodoService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// CreateTodoInput represents input for creating a todo
type CreateTodoInput struct {
	Title    string
	Deadline time.Time
}

// UpdateTodoInput represents input for updating a todo
type UpdateTodoInput struct {
	Title    string
	Deadline time.Time
}

// CheckQuota fails once a free user holds FreeTierTodoLimit todos.
// Pro users are never limited.
func (s *TodoService) CheckQuota(user *models.User) error {
	if user.Pro {
		return nil
	}

	count := len(user.Todos)
	if count >= constants.FreeTierTodoLimit {
		return newQuotaExceededError(count)
	}
	return nil
}

// FindOwned validates rawID and looks it up in the user's todos.
func (s *TodoService) FindOwned(user *models.User, rawID string) (*models.Todo, error) {
	if !utils.IsUUIDv4(rawID) {
		return nil, ErrInvalidTodoID
	}

	todo, ok := user.FindTodo(rawID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTodoNotFound, rawID)
	}
	return todo, nil
}

// List returns the user's todos in insertion order
func (s *TodoService) List(user *models.User) []models.Todo {
	return user.Todos
}

// Create appends a new open todo to the user's list
func (s *TodoService) Create(user *models.User, input CreateTodoInput) (*models.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	todo := &models.Todo{
		ID:        utils.NewID(),
		Title:     input.Title,
		Deadline:  input.Deadline,
		Done:      false,
		CreatedAt: s.now().UTC(),
	}

	if err := s.userRepo.AddTodo(user.ID, todo); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToSaveTodo, err)
	}

	user.Todos = append(user.Todos, *todo)
	return todo, nil
}

// Update overwrites title and deadline. ID, done and created_at are kept.
func (s *TodoService) Update(todo *models.Todo, input UpdateTodoInput) (*models.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	updated := *todo
	updated.Title = input.Title
	updated.Deadline = input.Deadline

	if err := s.save(&updated); err != nil {
		return nil, err
	}

	*todo = updated
	return todo, nil
}

// MarkDone sets done regardless of its previous value
func (s *TodoService) MarkDone(todo *models.Todo) (*models.Todo, error) {
	updated := *todo
	updated.Done = true

	if err := s.save(&updated); err != nil {
		return nil, err
	}

	*todo = updated
	return todo, nil
}

// Delete removes the todo from its owner's list permanently
func (s *TodoService) Delete(user *models.User, todo *models.Todo) error {
	if err := s.userRepo.DeleteTodo(user.ID, todo.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrTodoNotFound, todo.ID)
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

func (s *TodoService) save(todo *models.Todo) error {
	if err := s.userRepo.UpdateTodo(todo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrTodoNotFound, todo.ID)
		}
		return fmt.Errorf("%w: %v", ErrFailedToSaveTodo, err)
	}
	return nil
}
