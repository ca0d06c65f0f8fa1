package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/services"
)

// RequireTodoAccess resolves the todo named by the :id path parameter
// within the caller's own list.
//
// The caller is looked up again from the username header even when
// RequireUsername already ran, and the id format is only checked once the
// caller is known.
func RequireTodoAccess(userService *services.UserService, todoService *services.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userService.GetByUsername(c.GetHeader(constants.HeaderUsername))
		if err != nil {
			abortWithError(c, err)
			return
		}

		todo, err := todoService.FindOwned(user, c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyTodo, todo)
		c.Next()
	}
}

// GetTodo retrieves the todo resolved by RequireTodoAccess
func GetTodo(c *gin.Context) (*models.Todo, bool) {
	value, exists := c.Get(constants.ContextKeyTodo)
	if !exists {
		return nil, false
	}

	todo, ok := value.(*models.Todo)
	return todo, ok
}
