package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"sitedesk/internal/auth"
	"sitedesk/internal/database"
	"sitedesk/internal/models"
)

const (
	// TokenKey is the session-cookie slot holding the signed token.
	TokenKey = "token"
	// CtxUserID / CtxSessionID are set for downstream handlers.
	CtxUserID    = "UserID"
	CtxSessionID = "SessionID"
)

// RequireAuth accepts a request only when the cookie carries a valid
// token AND its auth_sessions row still exists. Sign-out revokes by
// deleting rows, so a stale token fails here even before its expiry.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		tokenStr, _ := sess.Get(TokenKey).(string)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "로그인이 필요합니다.",
			})
			return
		}

		claims, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "세션이 만료되었습니다. 다시 로그인해주세요.",
			})
			return
		}

		var session models.AuthSession
		if err := database.DB.First(&session, claims.SessionID).Error; err != nil ||
			session.UserID != claims.UserID ||
			time.Now().After(session.ExpiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "세션이 만료되었습니다. 다시 로그인해주세요.",
			})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxSessionID, claims.SessionID)
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Currently only used for
// admin-only deletes.
func RequireRole(roles ...string) gin.HandlerFunc {
	roleSet := map[string]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		uVal, ok := c.Get(CtxCurrentUser)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "로그인이 필요합니다.",
			})
			return
		}
		user, ok := uVal.(models.User)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "로그인이 필요합니다.",
			})
			return
		}
		if _, ok := roleSet[string(user.Role)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "권한이 없습니다.",
			})
			return
		}
		c.Next()
	}
}
