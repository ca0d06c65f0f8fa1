package constants

const (
	// HeaderUsername carries the caller's username. It is the only identity check.
	HeaderUsername = "username"

	// Gin context keys set by the guard middleware
	ContextKeyUser = "user"
	ContextKeyTodo = "todo"

	// FreeTierTodoLimit is the number of todos a non-pro user may hold.
	FreeTierTodoLimit = 10
)
