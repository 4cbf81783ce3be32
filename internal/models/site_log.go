package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sitedesk/internal/taxonomy"
)

// ImageList stores photo URLs as a JSON text column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ImageList) Scan(src interface{}) error {
	if src == nil {
		*l = ImageList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported image list source %T", src)
}

// SiteLog is a dated field report tied to one project and one author.
type SiteLog struct {
	gorm.Model
	ProjectID uint    `gorm:"index;not null" json:"project_id"`
	Project   Project `json:"-"`

	AuthorID uint  `gorm:"not null" json:"author_id"`
	Author   *User `json:"author,omitempty"`

	Content string           `gorm:"type:text;not null" json:"content"`
	LogType taxonomy.LogType `gorm:"type:varchar(20);not null;default:daily" json:"log_type"`
	Images  ImageList        `gorm:"type:text" json:"images"`
	Weather string           `gorm:"size:50" json:"weather,omitempty"`

	WorkDate time.Time `gorm:"not null" json:"work_date"`
}
