package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gotodo/backend/internal/auth"
	"github.com/gotodo/backend/internal/service"
)

// NewRouter wires middleware and routes. Everything under /api/v1 except
// the auth endpoints sits behind the token middleware.
func NewRouter(
	log zerolog.Logger,
	tokens *auth.TokenService,
	users *service.UserService,
	todos *service.TodoService,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log), CORSMiddleware(allowedOrigins))

	r.GET("/ping", Ping)

	authHandler := NewAuthHandler(users)
	userHandler := NewUserHandler(users)
	todoHandler := NewTodoHandler(todos)

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(AuthMiddleware(tokens))
	protected.GET("/users/me", userHandler.Me)
	protected.GET("/todos", todoHandler.List)
	protected.POST("/todos", todoHandler.Create)
	protected.GET("/todos/:id", todoHandler.Get)
	protected.PATCH("/todos/:id/status", todoHandler.UpdateStatus)
	protected.PATCH("/todos/:id/priority", todoHandler.UpdatePriority)
	protected.PATCH("/todos/:id/deadline", todoHandler.UpdateDeadline)
	protected.PATCH("/todos/:id/done", todoHandler.UpdateDone)
	protected.DELETE("/todos/:id", todoHandler.Delete)

	return r
}
