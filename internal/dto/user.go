package dto

import "github.com/yukikurage/todo-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Pro      bool      `json:"pro"`
	Todos    []TodoDTO `json:"todos"`
}

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Pro:      user.Pro,
		Todos:    ToTodoDTOs(user.Todos),
	}
}
