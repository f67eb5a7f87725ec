package models

import "time"

// User is a workspace member. A workspace has no table of its own; it is the
// set of users sharing a WorkspaceCode.
type User struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	Username      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"type:varchar(255);not null" json:"-"`
	WorkspaceCode string    `gorm:"type:varchar(64);index;not null" json:"workspace_code"`
	Passcode      string    `gorm:"type:varchar(32);not null" json:"-"`
	Role          Role      `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
