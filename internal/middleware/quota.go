package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/services"
)

// EnforceTodoQuota blocks free users who already hold the maximum number
// of todos. Must run after RequireUsername.
func EnforceTodoQuota(todoService *services.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			abortMissingContext(c, constants.ContextKeyUser)
			return
		}

		if err := todoService.CheckQuota(user); err != nil {
			abortWithError(c, err)
			return
		}

		c.Next()
	}
}
