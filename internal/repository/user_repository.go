package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/family-task-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrUsernameExists is returned when the pre-insert check finds the username.
	ErrUsernameExists = errors.New("user repository: username exists")
	// ErrEmailExists is returned when the pre-insert check finds the email.
	ErrEmailExists = errors.New("user repository: email exists")
	// ErrDuplicateUser is returned when the insert itself hits a unique index,
	// i.e. a concurrent signup won the race after the pre-insert check.
	ErrDuplicateUser = errors.New("user repository: duplicate user")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateUnique runs the existence checks and the insert in one transaction.
// The unique indexes remain the source of truth; the checks only let the
// common case report which field collided.
func (r *GormUserRepository) CreateUnique(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if count > 0 {
			return ErrUsernameExists
		}

		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if count > 0 {
			return ErrEmailExists
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %v", ErrDuplicateUser, err)
			}
			return err
		}
		return nil
	})
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
