package dto

import (
	"time"

	"github.com/yukikurage/todo-api/internal/models"
)

// TodoDTO represents a todo in API responses
type TodoDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Deadline  time.Time `json:"deadline"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTodoRequest is the body of POST /todos
type CreateTodoRequest struct {
	Title    string `json:"title" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
}

// UpdateTodoRequest is the body of PUT /todos/:id
type UpdateTodoRequest struct {
	Title    string `json:"title" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
}

// ToTodoDTO converts a Todo model to TodoDTO
func ToTodoDTO(todo models.Todo) TodoDTO {
	return TodoDTO{
		ID:        todo.ID,
		Title:     todo.Title,
		Deadline:  todo.Deadline,
		Done:      todo.Done,
		CreatedAt: todo.CreatedAt,
	}
}

// ToTodoDTOs converts todos keeping their order. The result is never nil,
// so an empty list encodes as [].
func ToTodoDTOs(todos []models.Todo) []TodoDTO {
	items := make([]TodoDTO, len(todos))
	for i, todo := range todos {
		items[i] = ToTodoDTO(todo)
	}
	return items
}
