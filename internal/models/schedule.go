package models

import (
	"time"

	"gorm.io/gorm"

	"sitedesk/internal/taxonomy"
)

// Schedule is a future-phase feature. The table is migrated so external
// tools can already seed it, but the API only serves a placeholder.
type Schedule struct {
	gorm.Model
	ProjectID uint    `gorm:"index;not null" json:"project_id"`
	Project   Project `json:"-"`

	Title       string             `gorm:"size:255;not null" json:"title"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	EventType   taxonomy.EventType `gorm:"type:varchar(20);not null" json:"event_type"`

	StartDatetime time.Time  `gorm:"not null" json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
	IsAllDay      bool       `gorm:"not null;default:false" json:"is_all_day"`

	AssignedTo *uint `json:"assigned_to,omitempty"`
	Assignee   *User `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}
