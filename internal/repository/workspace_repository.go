package repository

import (
	"context"

	"github.com/yukikurage/family-task-api/internal/database"
	"github.com/yukikurage/family-task-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkspaceRepository is a GORM implementation of WorkspaceRepository
type GormWorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &GormWorkspaceRepository{db: db}
}

// ListMembers lists the users of a workspace ordered by ID
func (r *GormWorkspaceRepository) ListMembers(ctx context.Context, workspaceCode string) ([]models.User, error) {
	members := []models.User{}
	if err := r.db.WithContext(ctx).
		Scopes(database.InWorkspace("users", workspaceCode)).
		Order("users.id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindFirstMember returns the earliest user to join a workspace
func (r *GormWorkspaceRepository) FindFirstMember(ctx context.Context, workspaceCode string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Scopes(database.InWorkspace("users", workspaceCode)).
		Order("users.id ASC").
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
