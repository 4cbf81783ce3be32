package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitedesk/internal/database"
	"sitedesk/internal/models"
)

// ListTeams serves the read-only crew directory for project forms.
func ListTeams(c *gin.Context) {
	var teams []models.Team
	err := database.DB.Preload("Leader").Order("name asc").Find(&teams).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "팀 목록을 불러오는데 실패했습니다.")
		return
	}
	respondData(c, http.StatusOK, teams)
}

// ListManagers serves the manager/admin candidates for the project
// form's manager picker.
func ListManagers(c *gin.Context) {
	var managers []models.User
	err := database.DB.
		Where("role IN ?", []string{"admin", "manager"}).
		Order("name asc").
		Find(&managers).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "담당자 목록을 불러오는데 실패했습니다.")
		return
	}
	respondData(c, http.StatusOK, managers)
}
