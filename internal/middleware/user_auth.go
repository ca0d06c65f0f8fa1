package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/services"
)

// RequireUsername resolves the caller from the username header.
// A matching username is the only proof of identity.
func RequireUsername(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userService.GetByUsername(c.GetHeader(constants.HeaderUsername))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireUserParam resolves the user named by the :id path parameter.
// The parameter is not format checked.
func RequireUserParam(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userService.GetByID(c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetUser retrieves the user resolved by a guard
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}
