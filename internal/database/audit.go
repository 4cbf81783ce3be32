package database

import "sitedesk/internal/models"

// CreateAuditLog appends one audit entry; failures are swallowed so a
// broken audit table never blocks the mutation it describes.
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
