package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-todo-backend/internal/todo"
	"ai-todo-backend/internal/todo/repository"
	"ai-todo-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Todo domain
	todoUC          todo.UseCase
	todoRepo        repository.TodoRepository
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Todo domain
	TodoUseCase     todo.UseCase
	TodoRepository  repository.TodoRepository
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		todoUC:          cfg.TodoUseCase,
		todoRepo:        cfg.TodoRepository,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoUC == nil {
		return errors.New("todo usecase is required")
	}
	if srv.todoRepo == nil {
		return errors.New("todo repository is required")
	}
	return nil
}
