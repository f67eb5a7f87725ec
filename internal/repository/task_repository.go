package repository

import (
	"context"

	"github.com/yukikurage/family-task-api/internal/database"
	"github.com/yukikurage/family-task-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// ListByWorkspace returns the workspace's tasks with assigner and assignee
// usernames. Both joins are outer joins so a task whose user is gone is
// still listed.
func (r *GormTaskRepository) ListByWorkspace(ctx context.Context, workspaceCode string) ([]TaskRow, error) {
	rows := []TaskRow{}

	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.*, assigner.username AS assigned_by_username, assignee.username AS assigned_to_username").
		Joins("LEFT JOIN users AS assigner ON assigner.id = tasks.assigned_by").
		Joins("LEFT JOIN users AS assignee ON assignee.id = tasks.assigned_to").
		Scopes(database.InWorkspace("tasks", workspaceCode), database.ByDueDate).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// MarkCompleted loads the task and flips it to completed inside one
// transaction. It returns gorm.ErrRecordNotFound for an unknown ID.
// Completing an already completed task only refreshes updated_at.
func (r *GormTaskRepository) MarkCompleted(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}
		return tx.Model(&task).Updates(map[string]interface{}{"completed": true}).Error
	})
	if err != nil {
		return nil, err
	}

	task.Completed = true
	return &task, nil
}
