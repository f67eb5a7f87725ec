package dto

import (
	"time"

	"github.com/yukikurage/family-task-api/internal/repository"
)

// UserRefDTO identifies a user referenced by a task. Username is null
// when the user no longer exists.
type UserRefDTO struct {
	ID       uint64  `json:"id"`
	Username *string `json:"username"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID            uint64     `json:"id"`
	WorkspaceCode string     `json:"workspace_code"`
	TaskName      string     `json:"task_name"`
	AssignedBy    UserRefDTO `json:"assigned_by"`
	AssignedTo    UserRefDTO `json:"assigned_to"`
	DueDate       time.Time  `json:"due_date"`
	Completed     bool       `json:"completed"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TaskCreatedResponse is returned after a task is added
type TaskCreatedResponse struct {
	TaskID  uint64 `json:"task_id"`
	Message string `json:"message"`
}

// MessageResponse carries a human readable acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// ToTaskDTO converts a joined task row to TaskDTO
func ToTaskDTO(row repository.TaskRow) TaskDTO {
	return TaskDTO{
		ID:            row.ID,
		WorkspaceCode: row.WorkspaceCode,
		TaskName:      row.TaskName,
		AssignedBy:    UserRefDTO{ID: row.AssignedBy, Username: row.AssignedByUsername},
		AssignedTo:    UserRefDTO{ID: row.AssignedTo, Username: row.AssignedToUsername},
		DueDate:       row.DueDate.UTC(),
		Completed:     row.Completed,
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}
}

// ToTaskDTOs converts task rows, always returning a non-nil slice
func ToTaskDTOs(rows []repository.TaskRow) []TaskDTO {
	tasks := make([]TaskDTO, len(rows))
	for i, row := range rows {
		tasks[i] = ToTaskDTO(row)
	}
	return tasks
}
