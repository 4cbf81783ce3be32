package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitedesk/internal/database"
	"sitedesk/internal/models"
)

// GetProjectHistory returns the audit trail of one project, oldest
// first, so the detail view can render a chronological activity feed.
func GetProjectHistory(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, projectID).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	var logs []models.AuditLog
	err := database.DB.
		Where("entity = ? AND entity_id = ?", "project", project.ID).
		Preload("User").
		Order("created_at asc").
		Find(&logs).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "이력을 불러오는데 실패했습니다.")
		return
	}

	respondData(c, http.StatusOK, logs)
}
