package main

import (
	"context"
	"log"
	"net/http"

	"exertrack/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"exertrack/internal/cache"
	"exertrack/internal/config"
	"exertrack/internal/db"
	"exertrack/internal/handler"
	"exertrack/internal/repository"
	"exertrack/internal/router"
	"exertrack/internal/service"
)

// @title Exercise Tracker API
// @version 1.0
// @description REST API tracking users and their exercise log entries.
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	ctx := context.Background()
	client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("database disconnect: %v", err)
		}
	}()

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	exerciseRepo := repository.NewExerciseRepository(database)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	exerciseService := service.NewExerciseService(userService, exerciseRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)

	// Register routes
	router.Register(e, userHandler, exerciseHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
