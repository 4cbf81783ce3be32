package models

import (
	"time"

	"gorm.io/gorm"

	"sitedesk/internal/taxonomy"
)

// AiInsight is produced by an external analysis process and arrives over
// the message bus. This service only stores and displays them.
type AiInsight struct {
	gorm.Model
	ProjectID uint    `gorm:"index;not null" json:"project_id"`
	Project   Project `json:"-"`

	InsightType taxonomy.InsightType `gorm:"type:varchar(20);not null;default:risk" json:"insight_type"`
	Message     string               `gorm:"type:text;not null" json:"message"`
	RiskLevel   taxonomy.RiskLevel   `gorm:"type:varchar(20);not null;default:info" json:"risk_level"`
	SourceData  string               `gorm:"type:text" json:"source_data,omitempty"`

	IsResolved bool       `gorm:"not null;default:false" json:"is_resolved"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
