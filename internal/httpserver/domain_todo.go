package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"ai-todo-backend/internal/middleware"
	todoHTTP "ai-todo-backend/internal/todo/delivery/http"
)

// setupTodoDomain wires the todo domain into the router. The use case and
// repository arrive pre-built through Config; only the HTTP handler is
// created here.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := todoHTTP.New(srv.l, srv.todoUC, srv.todoRepo)

	// Registers /api/v1/parse-todo, /api/v1/analyze-todos, /api/v1/todos
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
