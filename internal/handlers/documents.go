package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitedesk/internal/database"
	"sitedesk/internal/models"
)

// ListProjectDocuments returns a project's financial documents plus the
// approved-estimate and approved-order totals.
func ListProjectDocuments(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, projectID).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	var docs []models.Document
	err := database.DB.Preload("Approver").
		Where("project_id = ?", project.ID).
		Order("created_at desc").
		Find(&docs).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "문서를 불러오는데 실패했습니다.")
		return
	}

	estimateTotal, orderTotal := models.DocumentTotals(docs)

	respondData(c, http.StatusOK, gin.H{
		"documents":      docs,
		"estimate_total": estimateTotal,
		"order_total":    orderTotal,
	})
}

// CreateDocument is a stub: the document authoring flow is not in this
// phase, documents arrive through back-office imports.
func CreateDocument(c *gin.Context) {
	respondError(c, http.StatusNotImplemented, "문서 작성 기능은 준비 중입니다.")
}
