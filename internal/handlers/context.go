package handlers

import (
	"github.com/gin-gonic/gin"

	"sitedesk/internal/middleware"
)

// currentUserID returns the authenticated user id, 0 when absent.
// Routes behind RequireAuth always have it set.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.CtxUserID); ok {
		if uid, ok := v.(uint); ok {
			return uid
		}
	}
	return 0
}

func currentSessionID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.CtxSessionID); ok {
		if sid, ok := v.(uint); ok {
			return sid
		}
	}
	return 0
}
