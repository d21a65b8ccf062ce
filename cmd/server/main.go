package main

import (
	"log"
	"net/http"
	"os"

	_ "taskhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskhub/internal/auth"
	"taskhub/internal/cache"
	"taskhub/internal/config"
	"taskhub/internal/db"
	"taskhub/internal/handler"
	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/router"
	"taskhub/internal/service"
)

// @title Taskhub API
// @version 1.0
// @description Personal task management API with per-user lists and tasks behind JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Task{},
			&model.List{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.List{},
		&model.Task{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	listRepo := repository.NewListRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Token service
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

	// Services
	authService := service.NewAuthService(userRepo, listRepo, jwtService)
	listService := service.NewListService(listRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	listHandler := handler.NewListHandler(listService)
	taskHandler := handler.NewTaskHandler(taskService)

	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		listHandler,
		taskHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
