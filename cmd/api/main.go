package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-todo-backend/config"
	_ "ai-todo-backend/docs" // Swagger docs
	"ai-todo-backend/internal/httpserver"
	"ai-todo-backend/internal/todo/repository"
	repoInmem "ai-todo-backend/internal/todo/repository/inmem"
	repoSupabase "ai-todo-backend/internal/todo/repository/supabase"
	"ai-todo-backend/internal/todo/usecase"
	"ai-todo-backend/pkg/gemini"
	"ai-todo-backend/pkg/log"
	"ai-todo-backend/pkg/supabase"
)

// @title       AI Todo API
// @description Korean natural-language todo parsing and analysis backed by Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Todo backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini client
	llm, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
		APIURL: cfg.Gemini.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini model: %s", llm.Model())

	// 4. Todo repository: Supabase when configured, process-local otherwise
	var todoRepo repository.TodoRepository
	if cfg.Supabase.Enabled {
		sbClient, sbErr := supabase.New(supabase.Config{
			URL:        cfg.Supabase.URL,
			ServiceKey: cfg.Supabase.ServiceKey,
		})
		if sbErr != nil {
			logger.Error(ctx, "Failed to initialize Supabase client: ", sbErr)
			return
		}
		todoRepo = repoSupabase.New(sbClient, logger)
		logger.Info(ctx, "Supabase persistence enabled")
	} else {
		todoRepo = repoInmem.New()
		logger.Warn(ctx, "Supabase not configured, todos are kept in memory only")
	}

	// 5. Todo UseCase
	todoUC := usecase.New(logger, llm, nil)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TodoUseCase:     todoUC,
		TodoRepository:  todoRepo,
		RateLimitPerMin: cfg.RateLimit.PerClientPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
