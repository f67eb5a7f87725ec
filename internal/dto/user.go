package dto

import (
	"github.com/yukikurage/family-task-api/internal/models"
	"github.com/yukikurage/family-task-api/internal/services"
)

// SignupResponse is returned after a successful signup
type SignupResponse struct {
	UserID        uint64 `json:"user_id"`
	WorkspaceCode string `json:"workspace_code"`
	Passcode      string `json:"passcode"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	UserID        uint64      `json:"user_id"`
	WorkspaceCode string      `json:"workspace_code"`
	Role          models.Role `json:"role"`
	Passcode      string      `json:"passcode"`
}

// WorkspaceMemberDTO represents a member in a workspace listing
type WorkspaceMemberDTO struct {
	ID       uint64      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// HealthResponse reports API and storage health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func ToSignupResponse(result services.SignupResult) SignupResponse {
	return SignupResponse{
		UserID:        result.UserID,
		WorkspaceCode: result.WorkspaceCode,
		Passcode:      result.Passcode,
	}
}

func ToLoginResponse(user models.User) LoginResponse {
	return LoginResponse{
		UserID:        user.ID,
		WorkspaceCode: user.WorkspaceCode,
		Role:          user.Role,
		Passcode:      user.Passcode,
	}
}

// ToWorkspaceMemberDTOs converts users to member entries, never returning nil
func ToWorkspaceMemberDTOs(users []models.User) []WorkspaceMemberDTO {
	members := make([]WorkspaceMemberDTO, len(users))
	for i, user := range users {
		members[i] = WorkspaceMemberDTO{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		}
	}
	return members
}
