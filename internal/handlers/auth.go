package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"sitedesk/internal/auth"
	"sitedesk/internal/config"
	"sitedesk/internal/database"
	"sitedesk/internal/middleware"
	"sitedesk/internal/models"
	"sitedesk/internal/retry"
	"sitedesk/internal/taxonomy"
	"sitedesk/internal/util"
)

type AuthHandler struct {
	secret     string
	sessionTTL time.Duration
}

func NewAuthHandler(cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		secret:     cfg.Secret,
		sessionTTL: time.Duration(cfg.TTLHours) * time.Hour,
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(c, http.StatusBadRequest, "이메일을 입력해주세요.")
		return
	}
	if len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "비밀번호는 6자 이상이어야 합니다.")
		return
	}
	if req.Name == "" {
		respondError(c, http.StatusBadRequest, "이름을 입력해주세요.")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		respondError(c, http.StatusBadRequest, "이미 등록된 이메일입니다.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "계정 생성에 실패했습니다.")
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         taxonomy.RoleStaff,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "계정 생성에 실패했습니다.")
		return
	}

	respondMessage(c, http.StatusCreated, "가입이 완료되었습니다. 로그인해주세요.")
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	// Transient DB outages get the shared bounded retry; credential
	// rejections do not.
	var user models.User
	err := retry.Login.Do(c.Request.Context(), func() error {
		return database.DB.Where("email = ?", req.Email).First(&user).Error
	})
	if err != nil {
		if retry.IsTransient(err) {
			respondError(c, http.StatusServiceUnavailable,
				"네트워크 연결에 실패했습니다. 인터넷 연결을 확인해주세요.")
			return
		}
		respondError(c, http.StatusBadRequest, "이메일 또는 비밀번호가 올바르지 않습니다.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusBadRequest, "이메일 또는 비밀번호가 올바르지 않습니다.")
		return
	}

	session := models.AuthSession{
		UserID:    user.ID,
		UserAgent: c.Request.UserAgent(),
		ExpiresAt: time.Now().Add(h.sessionTTL),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "로그인에 실패했습니다.")
		return
	}

	token, err := auth.GenerateToken(
		auth.SessionClaims{UserID: user.ID, SessionID: session.ID},
		h.secret, session.ExpiresAt,
	)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "로그인에 실패했습니다.")
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.TokenKey, token)
	if err := sess.Save(); err != nil {
		util.Log.Warn("failed to save session cookie", zap.Error(err))
	}

	database.CreateAuditLog(user.ID, "auth", session.ID, "sign_in", "로그인")

	respondData(c, http.StatusOK, gin.H{"user": user})
}

// SignOut tears down the session. scope=local (default) removes only
// this browser's auth_sessions row; scope=global removes every row for
// the user, signing out all devices.
func (h *AuthHandler) SignOut(c *gin.Context) {
	scope, ok := auth.ParseSignOutScope(c.Query("scope"))
	if !ok {
		respondError(c, http.StatusBadRequest, "scope는 local 또는 global이어야 합니다.")
		return
	}

	userID := currentUserID(c)
	sessionID := currentSessionID(c)

	switch scope {
	case auth.ScopeGlobal:
		database.DB.Where("user_id = ?", userID).Delete(&models.AuthSession{})
	default:
		database.DB.Delete(&models.AuthSession{}, sessionID)
	}

	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()

	database.CreateAuditLog(userID, "auth", sessionID, "sign_out", string(scope))

	respondMessage(c, http.StatusOK, "로그아웃되었습니다.")
}

// Me returns the session identity plus the profile row when one exists.
// An authenticated user with no profile row is a valid state.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := currentUserID(c)

	resp := gin.H{"user_id": userID, "profile": nil}
	if uVal, ok := c.Get(middleware.CtxCurrentUser); ok {
		if u, ok := uVal.(models.User); ok {
			resp["profile"] = u
		}
	}
	respondData(c, http.StatusOK, resp)
}
