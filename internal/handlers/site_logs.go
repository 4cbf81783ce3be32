package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"sitedesk/internal/database"
	"sitedesk/internal/models"
	"sitedesk/internal/taxonomy"
)

// MinLogContentLength is the shortest site log content accepted,
// counted in runes so Korean text is measured fairly.
const MinLogContentLength = 5

// MaxLogImages caps photos attached to one log.
const MaxLogImages = 10

// ListSiteLogs returns a project's logs, newest work date first, then
// newest record first within a day.
func ListSiteLogs(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, projectID).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	dbq := database.DB.Preload("Author").
		Where("project_id = ?", project.ID).
		Order("work_date desc").
		Order("created_at desc")

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			dbq = dbq.Limit(limit)
		}
	}

	var logs []models.SiteLog
	if err := dbq.Find(&logs).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "데이터를 불러오는데 실패했습니다.")
		return
	}

	respondData(c, http.StatusOK, logs)
}

type siteLogRequest struct {
	Content  string   `json:"content"`
	LogType  string   `json:"log_type"`
	Images   []string `json:"images"`
	Weather  string   `json:"weather"`
	WorkDate string   `json:"work_date"`
}

// ValidateSiteLogContent applies the minimum-length rule shared with
// the form layer.
func ValidateSiteLogContent(content string) (string, bool) {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) < MinLogContentLength {
		return "최소 5자 이상 입력해주세요.", false
	}
	return "", true
}

func CreateSiteLog(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, projectID).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	var req siteLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	if msg, ok := ValidateSiteLogContent(req.Content); !ok {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	logType := taxonomy.LogDaily
	if req.LogType != "" {
		logType = taxonomy.LogType(req.LogType)
		if !logType.Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 기록 유형입니다.")
			return
		}
	}

	if len(req.Images) > MaxLogImages {
		respondError(c, http.StatusBadRequest, "최대 10개의 이미지만 업로드할 수 있습니다.")
		return
	}

	workDate := time.Now()
	if req.WorkDate != "" {
		t, err := time.Parse("2006-01-02", req.WorkDate)
		if err != nil {
			respondError(c, http.StatusBadRequest, "작업일 형식이 올바르지 않습니다.")
			return
		}
		workDate = t
	}

	log := models.SiteLog{
		ProjectID: project.ID,
		AuthorID:  currentUserID(c),
		Content:   strings.TrimSpace(req.Content),
		LogType:   logType,
		Images:    models.ImageList(req.Images),
		Weather:   strings.TrimSpace(req.Weather),
		WorkDate:  workDate,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "기록 저장에 실패했습니다.")
		return
	}

	database.CreateAuditLog(log.AuthorID, "site_log", log.ID, "create", "현장기록 작성")

	// The client refetches the list after this; we return only the row.
	respondData(c, http.StatusCreated, log)
}

func DeleteSiteLog(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "잘못된 기록 ID입니다.")
		return
	}

	var log models.SiteLog
	if err := database.DB.First(&log, id).Error; err != nil {
		respondEmptyState(c, "기록을 찾을 수 없습니다.")
		return
	}

	if err := database.DB.Delete(&log).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "삭제에 실패했습니다.")
		return
	}

	database.CreateAuditLog(currentUserID(c), "site_log", log.ID, "delete", "현장기록 삭제")

	respondMessage(c, http.StatusOK, "기록이 삭제되었습니다.")
}
