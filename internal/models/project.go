package models

import (
	"time"

	"gorm.io/gorm"

	"sitedesk/internal/taxonomy"
)

type Project struct {
	gorm.Model
	Code        string `gorm:"uniqueIndex;size:20;not null" json:"code"`
	Name        string `gorm:"size:255;not null" json:"name"`
	ClientName  string `gorm:"size:255" json:"client_name,omitempty"`
	Location    string `gorm:"size:255" json:"location,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Status      taxonomy.ProjectStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	ProcessStep taxonomy.ProcessStep   `gorm:"type:varchar(20);not null;default:visit" json:"process_step"`
	Priority    taxonomy.Priority      `gorm:"type:varchar(20);not null;default:medium" json:"priority"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	TeamID    *uint `json:"team_id,omitempty"`
	Team      *Team `json:"team,omitempty"`
	ManagerID *uint `json:"manager_id,omitempty"`
	Manager   *User `json:"manager,omitempty"`

	// Dependents removed together with the project.
	SiteLogs  []SiteLog   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Documents []Document  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Insights  []AiInsight `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Schedules []Schedule  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
