package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitedesk/internal/dashboard"
	"sitedesk/internal/util"
)

type DashboardHandler struct {
	agg *dashboard.Aggregator
}

func NewDashboardHandler(agg *dashboard.Aggregator) *DashboardHandler {
	return &DashboardHandler{agg: agg}
}

// Summary serves the merged dashboard view. A cycle that outlives the
// 20 second budget surfaces a retryable error; a client that went away
// mid-cycle gets nothing and no error state is recorded.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.agg.Summary(c.Request.Context())
	if err == nil {
		respondData(c, http.StatusOK, summary)
		return
	}

	switch {
	case errors.Is(err, context.Canceled):
		// Navigation away, not a failure. Swallow it.
		c.Abort()
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"success":   false,
			"error":     "대시보드 데이터를 불러오는데 시간이 초과되었습니다.",
			"retryable": true,
		})
	case errors.Is(err, dashboard.ErrRefreshInFlight):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success":   false,
			"error":     "이미 새로고침 중입니다. 잠시 후 다시 시도해주세요.",
			"retryable": true,
		})
	default:
		util.Log.Error("dashboard fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "대시보드 데이터를 불러오는데 실패했습니다.",
			"retryable": true,
		})
	}
}
