package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "project", "site_log", "auth"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "step_change" etc.
	Details  string `gorm:"type:text"`
}
