package handlers

import "github.com/gin-gonic/gin"

// Handlers never leak errors past this boundary: every response is a
// result shape the client checks explicitly.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// respondEmptyState marks a record as absent: the client renders an
// empty-state view with a navigation affordance, not a hard failure.
func respondEmptyState(c *gin.Context, msg string) {
	c.JSON(404, gin.H{"success": false, "error": msg, "empty_state": true})
}
