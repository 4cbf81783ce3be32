package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Schedule and settings are future-phase pages; the API answers with a
// placeholder so the client can render its "coming soon" view.

func SchedulePage(c *gin.Context) {
	respondError(c, http.StatusNotImplemented, "일정 관리 기능은 준비 중입니다.")
}

func SettingsPage(c *gin.Context) {
	respondError(c, http.StatusNotImplemented, "설정 기능은 준비 중입니다.")
}
