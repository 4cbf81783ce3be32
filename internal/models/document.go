package models

import (
	"time"

	"gorm.io/gorm"

	"sitedesk/internal/taxonomy"
)

// Document is a financial record (estimate, contract, order, invoice,
// settlement) attached to a project. Amounts are KRW, no decimals.
type Document struct {
	gorm.Model
	ProjectID uint    `gorm:"index;not null" json:"project_id"`
	Project   Project `json:"-"`

	DocType   taxonomy.DocType   `gorm:"type:varchar(20);not null" json:"doc_type"`
	DocNumber string             `gorm:"size:50" json:"doc_number,omitempty"`
	Title     string             `gorm:"size:255;not null" json:"title"`
	Amount    int64              `gorm:"not null;default:0" json:"amount"`
	Status    taxonomy.DocStatus `gorm:"type:varchar(20);not null;default:draft" json:"status"`

	FileURL    string     `gorm:"size:500" json:"file_url,omitempty"`
	IssuedDate *time.Time `json:"issued_date,omitempty"`
	ApprovedBy *uint      `json:"approved_by,omitempty"`
	Approver   *User      `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`
}

// DocumentTotals sums approved amounts per financial axis: estimateTotal
// over approved estimates, orderTotal over approved orders.
func DocumentTotals(docs []Document) (estimateTotal, orderTotal int64) {
	for _, d := range docs {
		if d.Status != taxonomy.DocApproved {
			continue
		}
		switch d.DocType {
		case taxonomy.DocEstimate:
			estimateTotal += d.Amount
		case taxonomy.DocOrder:
			orderTotal += d.Amount
		}
	}
	return estimateTotal, orderTotal
}
