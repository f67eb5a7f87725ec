package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/yukikurage/family-task-api/internal/models"
	"github.com/yukikurage/family-task-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrTaskNameRequired      = errors.New("task_name is required")
	ErrWorkspaceCodeRequired = errors.New("workspace_code is required")
	ErrInvalidTask           = errors.New("task violates a storage constraint")
	ErrUserIDOutOfRange      = errors.New("assigned_by and assigned_to must fit in a signed 64-bit integer")
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

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	WorkspaceCode string
	TaskName      string
	AssignedBy    uint64
	AssignedTo    uint64
	DueDate       time.Time
}

// CreateTask inserts a task. Assigner and assignee are not checked;
// unknown users show up with a null username when listed.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	workspaceCode := strings.TrimSpace(input.WorkspaceCode)
	if workspaceCode == "" {
		return nil, ErrWorkspaceCodeRequired
	}
	taskName := strings.TrimSpace(input.TaskName)
	if taskName == "" {
		return nil, ErrTaskNameRequired
	}

	if input.AssignedBy > math.MaxInt64 || input.AssignedTo > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, ErrUserIDOutOfRange)
	}

	task := &models.Task{
		WorkspaceCode: workspaceCode,
		TaskName:      taskName,
		AssignedBy:    input.AssignedBy,
		AssignedTo:    input.AssignedTo,
		DueDate:       input.DueDate.UTC(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTask, err)
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns a workspace's tasks ordered by due date
func (s *TaskService) ListTasks(ctx context.Context, workspaceCode string) ([]repository.TaskRow, error) {
	rows, err := s.taskRepo.ListByWorkspace(ctx, strings.TrimSpace(workspaceCode))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return rows, nil
}

// CompleteTask marks a task completed. Completing a completed task succeeds.
func (s *TaskService) CompleteTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	if taskID > math.MaxInt64 {
		return nil, ErrTaskNotFound
	}

	task, err := s.taskRepo.MarkCompleted(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	return task, nil
}

func isConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrInvalidData)
}
