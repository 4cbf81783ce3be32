package models

import (
	"gorm.io/gorm"

	"sitedesk/internal/taxonomy"
)

type User struct {
	gorm.Model
	Email        string            `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string            `gorm:"not null" json:"-"`
	Name         string            `gorm:"size:100;not null" json:"name"`
	Role         taxonomy.UserRole `gorm:"type:varchar(20);not null;default:staff" json:"role"`
	Department   string            `gorm:"size:100" json:"department,omitempty"`
	AvatarURL    string            `gorm:"size:500" json:"avatar_url,omitempty"`
}
