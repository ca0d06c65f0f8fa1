package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM-backed UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user, rejecting taken usernames
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if count > 0 {
			return ErrDuplicateUsername
		}

		for i := range user.Todos {
			user.Todos[i].UserID = user.ID
			user.Todos[i].Seq = int64(i + 1)
		}
		if user.Todos == nil {
			user.Todos = []models.Todo{}
		}

		return tx.Create(user).Error
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.withTodos().Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.withTodos().Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// SetPro marks the user as pro
func (r *GormUserRepository) SetPro(userID string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Update("pro", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddTodo appends a todo after the user's last one
func (r *GormUserRepository) AddTodo(userID string, todo *models.Todo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var owners int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&owners).Error; err != nil {
			return err
		}
		if owners == 0 {
			return ErrNotFound
		}

		var last int64
		if err := tx.Model(&models.Todo{}).
			Where("user_id = ?", userID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&last).Error; err != nil {
			return fmt.Errorf("failed to read todo sequence: %w", err)
		}

		todo.UserID = userID
		todo.Seq = last + 1
		return tx.Create(todo).Error
	})
}

// UpdateTodo overwrites title, deadline and done of a stored todo
func (r *GormUserRepository) UpdateTodo(todo *models.Todo) error {
	result := r.db.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", todo.ID, todo.UserID).
		Updates(map[string]interface{}{
			"title":    todo.Title,
			"deadline": todo.Deadline,
			"done":     todo.Done,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTodo permanently deletes a todo
func (r *GormUserRepository) DeleteTodo(userID, todoID string) error {
	result := r.db.Where("id = ? AND user_id = ?", todoID, userID).Delete(&models.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of registered users
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormUserRepository) withTodos() *gorm.DB {
	return r.db.Preload("Todos", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq ASC")
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
