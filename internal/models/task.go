package models

import "time"

// Task is a unit of work inside a workspace. AssignedBy and AssignedTo are
// user IDs; they are not constrained, so a reference may outlive its user.
type Task struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	WorkspaceCode string    `gorm:"type:varchar(64);not null;index:idx_tasks_workspace_due,priority:1" json:"workspace_code"`
	TaskName      string    `gorm:"type:varchar(255);not null" json:"task_name"`
	AssignedBy    uint64    `gorm:"not null" json:"assigned_by"`
	AssignedTo    uint64    `gorm:"not null" json:"assigned_to"`
	DueDate       time.Time `gorm:"not null;index:idx_tasks_workspace_due,priority:2" json:"due_date"`
	Completed     bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
