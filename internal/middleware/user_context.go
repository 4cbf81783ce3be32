package middleware

import (
	"github.com/gin-gonic/gin"

	"sitedesk/internal/database"
	"sitedesk/internal/models"
)

// CtxCurrentUser holds the loaded profile row, when one exists.
const CtxCurrentUser = "CurrentUser"

// InjectUser loads the profile for an authenticated request. A missing
// profile row is a valid state: authentication already passed, the
// handler sees a null profile.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uidVal, ok := c.Get(CtxUserID); ok {
			if uid, ok := uidVal.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set(CtxCurrentUser, user)
				}
			}
		}
		c.Next()
	}
}
