package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sitedesk/internal/database"
	"sitedesk/internal/models"
)

// Insights are read-only here: the external analysis pipeline writes
// them via the message bus, this API only lists them.

func ListProjectInsights(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, projectID).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	var insights []models.AiInsight
	err := database.DB.
		Where("project_id = ?", project.ID).
		Order("created_at desc").
		Find(&insights).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "인사이트를 불러오는데 실패했습니다.")
		return
	}

	respondData(c, http.StatusOK, insights)
}

func ListInsights(c *gin.Context) {
	dbq := database.DB.Order("created_at desc")

	if resolvedStr := c.Query("resolved"); resolvedStr != "" {
		resolved, err := strconv.ParseBool(resolvedStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "resolved는 true 또는 false여야 합니다.")
			return
		}
		dbq = dbq.Where("is_resolved = ?", resolved)
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			dbq = dbq.Limit(limit)
		}
	}

	var insights []models.AiInsight
	if err := dbq.Find(&insights).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "인사이트를 불러오는데 실패했습니다.")
		return
	}

	respondData(c, http.StatusOK, insights)
}
