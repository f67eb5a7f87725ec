package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/yukikurage/family-task-api/internal/models"
	"github.com/yukikurage/family-task-api/internal/repository"
	"gorm.io/gorm"
)

var ErrInvalidPasscode = errors.New("invalid workspace passcode")

// WorkspaceService resolves workspace membership.
type WorkspaceService struct {
	workspaceRepo repository.WorkspaceRepository
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(workspaceRepo repository.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
	}
}

// Members returns the users of a workspace, earliest first.
func (s *WorkspaceService) Members(ctx context.Context, workspaceCode string) ([]models.User, error) {
	members, err := s.workspaceRepo.ListMembers(ctx, workspaceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace members: %w", err)
	}
	return members, nil
}

// VerifyPasscode checks passcode against the workspace's canonical
// passcode, which is the one issued to its first member. A workspace
// with no members accepts any passcode.
func (s *WorkspaceService) VerifyPasscode(ctx context.Context, workspaceCode, passcode string) error {
	first, err := s.workspaceRepo.FindFirstMember(ctx, workspaceCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(first.Passcode), []byte(passcode)) != 1 {
		return ErrInvalidPasscode
	}
	return nil
}
