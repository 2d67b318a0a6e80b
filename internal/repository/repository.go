package repository

import (
	"context"

	"todo-tasks/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create persists a new task and leaves the store-assigned id on it
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uint64) (*models.Task, error)
}
