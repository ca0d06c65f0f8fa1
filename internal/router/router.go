package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/yukikurage/todo-api/internal/handlers"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
)

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// New wires services, guards and handlers around repo and returns the
// complete HTTP handler, CORS included.
func New(repo repository.UserRepository, opts Options) http.Handler {
	userService := services.NewUserService(repo)
	todoService := services.NewTodoService(repo)

	userHandler := handlers.NewUserHandler(userService)
	todoHandler := handlers.NewTodoHandler(todoService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Serialize())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		count, err := userService.Count()
		if err != nil {
			middleware.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Todo API is running",
			"users":   count,
		})
	})

	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", middleware.RequireUserParam(userService), userHandler.GetUser)
		users.PATCH("/:id/pro", middleware.RequireUserParam(userService), userHandler.UpgradeToPro)
	}

	todos := r.Group("/todos")
	{
		todos.GET("", middleware.RequireUsername(userService), todoHandler.ListTodos)
		todos.POST("", middleware.RequireUsername(userService), middleware.EnforceTodoQuota(todoService), todoHandler.CreateTodo)
		todos.PUT("/:id", middleware.RequireTodoAccess(userService, todoService), todoHandler.UpdateTodo)
		todos.PATCH("/:id/done", middleware.RequireTodoAccess(userService, todoService), todoHandler.MarkTodoDone)
		todos.DELETE("/:id", middleware.RequireUsername(userService), middleware.RequireTodoAccess(userService, todoService), todoHandler.DeleteTodo)
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(r)
}
