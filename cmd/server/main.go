package main

import (
	"github.com/gin-gonic/gin"

	"todo-tasks/internal/config"
	"todo-tasks/internal/database"
	"todo-tasks/internal/handlers"
	"todo-tasks/internal/logger"
	"todo-tasks/internal/middleware"
	"todo-tasks/internal/repository"
	"todo-tasks/internal/services"
)

func main() {
	log := logger.New()

	// Load configuration; every missing key is reported at once
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	// Connect to database
	if err := database.Connect(cfg, log); err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	log.Info("database connection established")

	// Run migrations before the server accepts requests
	if err := database.Migrate(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.WithError(err).Fatal("failed to add indexes")
	}
	log.Info("database migrations completed")

	// Initialize handlers
	taskRepo := repository.NewTaskRepository(database.GetDB())
	taskService := services.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(taskService, log)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.RequestLogger(log))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", middleware.MetricsHandler())

	// Task routes
	r.POST("/task", taskHandler.CreateTask)
	r.GET("/task/:id", taskHandler.GetTask)

	// Start server
	log.Info("server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
