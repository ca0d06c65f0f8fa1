package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/utils"
)

// UserService handles user registration, lookup and plan upgrades.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents the information needed to register a user.
type CreateUserInput struct {
	Name     string
	Username string
}

// Create registers a new free-tier user with an empty todo list.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if input.Username == "" {
		return nil, ErrUsernameRequired
	}

	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := &models.User{
		ID:       utils.NewID(),
		Name:     input.Name,
		Username: input.Username,
		Pro:      false,
		Todos:    []models.Todo{},
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetByUsername resolves the user named in the username header.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUsername, username)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpgradeToPro moves a free user to the pro plan. The plan never reverts.
func (s *UserService) UpgradeToPro(user *models.User) (*models.User, error) {
	if user.Pro {
		return nil, ErrAlreadyPro
	}

	if err := s.userRepo.SetPro(user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, user.ID)
		}
		return nil, fmt.Errorf("failed to upgrade user: %w", err)
	}

	user.Pro = true
	return user, nil
}

// Count returns the number of registered users.
func (s *UserService) Count() (int64, error) {
	return s.userRepo.Count()
}
