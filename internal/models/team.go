package models

import "gorm.io/gorm"

// Team is read-only in this system: installation crews are managed
// elsewhere, projects only reference them.
type Team struct {
	gorm.Model
	Name       string `gorm:"size:255;not null" json:"name"`
	LeaderID   *uint  `json:"leader_id,omitempty"`
	Leader     *User  `json:"leader,omitempty"`
	Contact    string `gorm:"size:50" json:"contact,omitempty"`
	Specialty  string `gorm:"size:100" json:"specialty,omitempty"` // 전기, 배관, 미장 등
	IsExternal bool   `gorm:"not null;default:false" json:"is_external"`
}
