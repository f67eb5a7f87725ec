package repository

import (
	"context"

	"github.com/yukikurage/family-task-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, task *models.Task) error

	// ListByWorkspace returns a workspace's tasks ordered by due date,
	// joined with the usernames of the assigner and assignee
	ListByWorkspace(ctx context.Context, workspaceCode string) ([]TaskRow, error)

	// MarkCompleted sets completed=true and refreshes updated_at
	MarkCompleted(ctx context.Context, id uint64) (*models.Task, error)
}

// TaskRow is a task with the usernames it references. A username is nil
// when the referenced user does not exist.
type TaskRow struct {
	models.Task
	AssignedByUsername *string
	AssignedToUsername *string
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateUnique inserts a user after checking username and email are free
	CreateUnique(ctx context.Context, user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// WorkspaceRepository resolves workspace membership. Workspaces have no
// table; membership is derived from users.workspace_code.
type WorkspaceRepository interface {
	// ListMembers lists the users of a workspace ordered by ID
	ListMembers(ctx context.Context, workspaceCode string) ([]models.User, error)

	// FindFirstMember returns the earliest user to join a workspace
	FindFirstMember(ctx context.Context, workspaceCode string) (*models.User, error)
}
