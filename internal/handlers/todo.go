package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
	"github.com/yukikurage/todo-api/internal/utils"
)

type TodoHandler struct {
	todoService *services.TodoService
}

func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// ListTodos returns the caller's todos in the order they were created
func (h *TodoHandler) ListTodos(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.InternalError(c, "User not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTOs(h.todoService.List(user)))
}

// CreateTodo appends a new todo to the caller's list
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.InternalError(c, "User not found in context")
		return
	}

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	deadline, err := utils.ParseDeadline(req.Deadline)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	todo, err := h.todoService.Create(user, services.CreateTodoInput{
		Title:    req.Title,
		Deadline: deadline,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoDTO(*todo))
}

// UpdateTodo replaces the title and deadline of a todo
// Todo is already resolved by RequireTodoAccess middleware
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	todo, ok := middleware.GetTodo(c)
	if !ok {
		apierrors.InternalError(c, "Todo not found in context")
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	deadline, err := utils.ParseDeadline(req.Deadline)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	todo, err = h.todoService.Update(todo, services.UpdateTodoInput{
		Title:    req.Title,
		Deadline: deadline,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// MarkTodoDone marks a todo as done
func (h *TodoHandler) MarkTodoDone(c *gin.Context) {
	todo, ok := middleware.GetTodo(c)
	if !ok {
		apierrors.InternalError(c, "Todo not found in context")
		return
	}

	todo, err := h.todoService.MarkDone(todo)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// DeleteTodo removes a todo from the caller's list
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.InternalError(c, "User not found in context")
		return
	}

	todo, ok := middleware.GetTodo(c)
	if !ok {
		apierrors.InternalError(c, "Todo not found in context")
		return
	}

	if err := h.todoService.Delete(user, todo); err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
