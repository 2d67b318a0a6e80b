package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-tasks/internal/models"
	"todo-tasks/internal/repository"
)

var (
	ErrNilTask             = errors.New("task must not be nil")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrTaskNotFound        = errors.New("task not found")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// Create validates and persists a task. A nil task is rejected with
// ErrNilTask before the repository is touched, so the store never sees
// it. On success the task carries the id the store assigned.
func (s *TaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task == nil {
		return nil, ErrNilTask
	}
	if task.Title == "" {
		return nil, ErrTitleRequired
	}
	if task.Description == "" {
		return nil, ErrDescriptionRequired
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Get returns a single task by id
func (s *TaskService) Get(ctx context.Context, id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}
