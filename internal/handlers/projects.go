package handlers

import (
	"fmt"
	"math/rand"
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

const minProjectNameLength = 3

// ListProjects filters by status and step at the store (exact match),
// searches name/client/location case-insensitively, and applies the
// priority filter in memory after the query returns.
func ListProjects(c *gin.Context) {
	statusStr := c.Query("status")
	stepStr := c.Query("step")
	search := strings.TrimSpace(c.Query("q"))
	priorityStr := c.Query("priority")

	dbq := database.DB.Preload("Team").Preload("Manager").Order("updated_at desc")

	if statusStr != "" {
		if !taxonomy.ProjectStatus(statusStr).Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 상태 값입니다.")
			return
		}
		dbq = dbq.Where("status = ?", statusStr)
	}

	if stepStr != "" {
		if !taxonomy.ProcessStep(stepStr).Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 단계 값입니다.")
			return
		}
		dbq = dbq.Where("process_step = ?", stepStr)
	}

	if search != "" {
		like := "%" + search + "%"
		dbq = dbq.Where(
			"name ILIKE ? OR client_name ILIKE ? OR location ILIKE ?",
			like, like, like,
		)
	}

	var projects []models.Project
	if err := dbq.Find(&projects).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "프로젝트 목록을 불러오는데 실패했습니다.")
		return
	}

	projects = FilterByPriority(projects, taxonomy.Priority(priorityStr))

	respondData(c, http.StatusOK, projects)
}

// FilterByPriority narrows a fetched list in memory. An empty or
// unknown priority passes everything through unchanged.
func FilterByPriority(projects []models.Project, p taxonomy.Priority) []models.Project {
	if !p.Valid() {
		return projects
	}
	out := make([]models.Project, 0, len(projects))
	for _, prj := range projects {
		if prj.Priority == p {
			out = append(out, prj)
		}
	}
	return out
}

type projectRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ClientName  string `json:"client_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ProcessStep string `json:"process_step"`
	Priority    string `json:"priority"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TeamID      *uint  `json:"team_id"`
	ManagerID   *uint  `json:"manager_id"`
}

func CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(req.Name) < minProjectNameLength {
		respondError(c, http.StatusBadRequest, "프로젝트명은 최소 3자 이상 입력해주세요.")
		return
	}

	status := taxonomy.StatusActive
	if req.Status != "" {
		status = taxonomy.ProjectStatus(req.Status)
		if !status.Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 상태 값입니다.")
			return
		}
	}

	step := taxonomy.StepVisit
	if req.ProcessStep != "" {
		step = taxonomy.ProcessStep(req.ProcessStep)
		if !step.Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 단계 값입니다.")
			return
		}
	}

	priority := taxonomy.PriorityMedium
	if req.Priority != "" {
		priority = taxonomy.Priority(req.Priority)
		if !priority.Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 우선순위 값입니다.")
			return
		}
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "시작일 형식이 올바르지 않습니다.")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "종료일 형식이 올바르지 않습니다.")
		return
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = generateProjectCode()
	}

	project := models.Project{
		Code:        code,
		Name:        req.Name,
		ClientName:  strings.TrimSpace(req.ClientName),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		ProcessStep: step,
		Priority:    priority,
		StartDate:   startDate,
		EndDate:     endDate,
		TeamID:      req.TeamID,
		ManagerID:   req.ManagerID,
	}

	if err := database.DB.Create(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "프로젝트 생성에 실패했습니다.")
		return
	}

	if uid := currentUserID(c); uid != 0 {
		database.CreateAuditLog(uid, "project", project.ID, "create", "프로젝트 생성: "+project.Name)
	}

	respondData(c, http.StatusCreated, project)
}

func GetProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	err := database.DB.Preload("Team").Preload("Team.Leader").Preload("Manager").
		First(&project, id).Error
	if err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	respondData(c, http.StatusOK, project)
}

func UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(req.Name) < minProjectNameLength {
		respondError(c, http.StatusBadRequest, "프로젝트명은 최소 3자 이상 입력해주세요.")
		return
	}

	if req.Status != "" {
		status := taxonomy.ProjectStatus(req.Status)
		if !status.Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 상태 값입니다.")
			return
		}
		project.Status = status
	}
	if req.ProcessStep != "" {
		step := taxonomy.ProcessStep(req.ProcessStep)
		if !step.Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 단계 값입니다.")
			return
		}
		project.ProcessStep = step
	}
	if req.Priority != "" {
		priority := taxonomy.Priority(req.Priority)
		if !priority.Valid() {
			respondError(c, http.StatusBadRequest, "잘못된 우선순위 값입니다.")
			return
		}
		project.Priority = priority
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "시작일 형식이 올바르지 않습니다.")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "종료일 형식이 올바르지 않습니다.")
		return
	}

	if req.Code != "" {
		project.Code = strings.TrimSpace(req.Code)
	}
	project.Name = req.Name
	project.ClientName = strings.TrimSpace(req.ClientName)
	project.Location = strings.TrimSpace(req.Location)
	project.Description = strings.TrimSpace(req.Description)
	project.StartDate = startDate
	project.EndDate = endDate
	project.TeamID = req.TeamID
	project.ManagerID = req.ManagerID

	if err := database.DB.Save(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "수정에 실패했습니다.")
		return
	}

	if uid := currentUserID(c); uid != 0 {
		database.CreateAuditLog(uid, "project", project.ID, "update", "프로젝트 수정: "+project.Name)
	}

	respondData(c, http.StatusOK, project)
}

// DeleteProject removes the project; dependents (site logs, documents,
// insights, schedules) cascade at the store.
func DeleteProject(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "잘못된 프로젝트 ID입니다.")
		return
	}

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	if err := database.DB.Select("SiteLogs", "Documents", "Insights", "Schedules").
		Delete(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "삭제에 실패했습니다.")
		return
	}

	if uid := currentUserID(c); uid != 0 {
		database.CreateAuditLog(uid, "project", project.ID, "delete", "프로젝트 삭제: "+project.Name)
	}

	respondMessage(c, http.StatusOK, "프로젝트가 삭제되었습니다.")
}

type stepChangeRequest struct {
	Step string `json:"step"`
}

// ChangeProjectStep moves a project to any stage of the pipeline in one
// click. Regressing to an earlier stage is allowed on purpose; site
// leads use it when a settled job reopens.
func ChangeProjectStep(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	var req stepChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	step := taxonomy.ProcessStep(req.Step)
	if !step.Valid() {
		respondError(c, http.StatusBadRequest, "잘못된 단계 값입니다.")
		return
	}

	project.ProcessStep = step
	if err := database.DB.Save(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "단계 변경에 실패했습니다.")
		return
	}

	if uid := currentUserID(c); uid != 0 {
		database.CreateAuditLog(uid, "project", project.ID, "step_change",
			"단계 변경: "+step.Label())
	}

	// Refetch so the response reflects the store, not the local copy.
	var fresh models.Project
	if err := database.DB.Preload("Team").Preload("Manager").First(&fresh, project.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "단계 변경 후 조회에 실패했습니다.")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"project":  fresh,
		"timeline": TimelineFor(fresh.ProcessStep),
	})
}

// TimelineStage is one rendered pipeline stage.
type TimelineStage struct {
	Key   taxonomy.ProcessStep `json:"key"`
	Label string               `json:"label"`
	Order int                  `json:"order"`
	State taxonomy.StepState   `json:"state"`
}

// TimelineFor classifies every stage against the current one. Exactly
// one stage is current for a known step; an unknown step renders all
// six as future.
func TimelineFor(current taxonomy.ProcessStep) []TimelineStage {
	stages := make([]TimelineStage, 0, len(taxonomy.Steps()))
	for _, s := range taxonomy.Steps() {
		stages = append(stages, TimelineStage{
			Key:   s,
			Label: s.Label(),
			Order: s.Order(),
			State: taxonomy.StateOf(s, current),
		})
	}
	return stages
}

func GetProjectTimeline(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		respondEmptyState(c, "프로젝트를 찾을 수 없습니다.")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"process_step": project.ProcessStep,
		"timeline":     TimelineFor(project.ProcessStep),
	})
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// generateProjectCode produces "YYYY-NNN" codes like 2026-042, retrying
// a few times on collisions before falling back to a timestamp suffix.
func generateProjectCode() string {
	year := time.Now().Year()
	for i := 0; i < 5; i++ {
		code := fmt.Sprintf("%d-%03d", year, rand.Intn(1000))
		var count int64
		if err := database.DB.Model(&models.Project{}).
			Where("code = ?", code).Count(&count).Error; err == nil && count == 0 {
			return code
		}
	}
	return fmt.Sprintf("%d-%d", year, time.Now().UnixMilli()%100000)
}
