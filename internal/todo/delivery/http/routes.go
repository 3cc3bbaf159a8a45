package http

import (
	"ai-todo-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The AI
// routes carry the per-client rate limit; CRUD routes only need a scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse-todo", mw.RateLimit(), mw.Scope(), h.ParseTodo)
	rg.POST("/analyze-todos", mw.RateLimit(), mw.Scope(), h.AnalyzeTodos)

	todos := rg.Group("/todos")
	{
		todos.POST("", mw.Scope(), h.Create)
		todos.GET("", mw.Scope(), h.List)
		todos.GET("/:id", mw.Scope(), h.Detail)
		todos.PATCH("/:id", mw.Scope(), h.Update)
		todos.DELETE("/:id", mw.Scope(), h.Delete)
	}
}
