package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/family-task-api/internal/models"
	"github.com/yukikurage/family-task-api/internal/repository"
	"github.com/yukikurage/family-task-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired     = errors.New("username is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrPasswordRequired     = errors.New("password is required")
	ErrInvalidRole          = errors.New("role must be member or owner")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already exists")
	ErrAccountExists        = errors.New("username or email already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthOptions tunes signup behaviour.
type AuthOptions struct {
	PasscodeLength  int
	RequirePasscode bool
}

// AuthService handles signup and login.
type AuthService struct {
	userRepo   repository.UserRepository
	workspaces *WorkspaceService
	hasher     *PasswordHasher
	opts       AuthOptions
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, workspaces *WorkspaceService, hasher *PasswordHasher, opts AuthOptions) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		workspaces: workspaces,
		hasher:     hasher,
		opts:       opts,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Username      string
	Email         string
	Password      string
	WorkspaceCode string
	Passcode      string
	Role          string
}

// SignupResult carries what a client needs to log in and share its workspace.
type SignupResult struct {
	UserID        uint64
	WorkspaceCode string
	Passcode      string
}

// Signup creates a user bound to a new or existing workspace.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*SignupResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	role := models.Role(strings.ToLower(strings.TrimSpace(input.Role)))
	if role == "" {
		role = models.RoleMember
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	workspaceCode := strings.TrimSpace(input.WorkspaceCode)
	if workspaceCode == "" {
		workspaceCode = utils.NewWorkspaceCode()
	} else if s.opts.RequirePasscode || input.Passcode != "" {
		if err := s.workspaces.VerifyPasscode(ctx, workspaceCode, strings.TrimSpace(input.Passcode)); err != nil {
			return nil, err
		}
	}

	passcode, err := utils.NewPasscode(s.opts.PasscodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to issue passcode: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:      username,
		Email:         email,
		PasswordHash:  hashedPassword,
		WorkspaceCode: workspaceCode,
		Passcode:      passcode,
		Role:          role,
	}

	if err := s.userRepo.CreateUnique(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrEmailExists):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUser):
			return nil, ErrAccountExists
		default:
			return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
		}
	}

	return &SignupResult{
		UserID:        user.ID,
		WorkspaceCode: user.WorkspaceCode,
		Passcode:      user.Passcode,
	}, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user.
// No session or token is issued.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
