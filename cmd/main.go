package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/kanban-backend/internal/data/db"
	"github.com/yungbote/kanban-backend/internal/data/repos"
	"github.com/yungbote/kanban-backend/internal/handlers"
	"github.com/yungbote/kanban-backend/internal/middleware"
	"github.com/yungbote/kanban-backend/internal/observability"
	"github.com/yungbote/kanban-backend/internal/pkg/logger"
	"github.com/yungbote/kanban-backend/internal/server"
	"github.com/yungbote/kanban-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on process environment")
	}
	httpPort := utils.GetEnv("HTTP_PORT", "8080", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	allowedOrigins := strings.Split(utils.GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000", log), ",")

	// Tracing
	shutdownTracing := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "kanban-backend",
		Environment: environment,
	})

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	boardRepos := repos.New(thePG, log)

	// Handlers
	tagHandler := handlers.NewTagHandler(boardRepos.Tags)
	userHandler := handlers.NewUserHandler(boardRepos.Users)
	workItemHandler := handlers.NewWorkItemHandler(boardRepos.WorkItems)

	// Router
	router := server.NewRouter(server.RouterConfig{
		ServiceName:     "kanban-backend",
		AllowedOrigins:  allowedOrigins,
		RequestLogger:   middleware.NewRequestLogger(log),
		TagHandler:      tagHandler,
		UserHandler:     userHandler,
		WorkItemHandler: workItemHandler,
	})

	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server listening", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", "error", err)
	}
	if shutdownTracing != nil {
		if err := shutdownTracing(ctx); err != nil {
			log.Error("Tracing shutdown failed", "error", err)
		}
	}
}
