package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sitedesk/internal/config"
	"sitedesk/internal/dashboard"
	"sitedesk/internal/handlers"
	"sitedesk/internal/middleware"
	"sitedesk/internal/storage"
	"sitedesk/internal/taxonomy"
)

func NewRouter(cfg *config.Config, store *storage.LocalStore, agg *dashboard.Aggregator) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Metrics())

	cookieStore := cookie.NewStore([]byte(cfg.Session.Secret))
	r.Use(sessions.Sessions("sitedesk_session", cookieStore))

	authHandler := handlers.NewAuthHandler(cfg.Session)
	uploadHandler := handlers.NewUploadHandler(store)
	dashboardHandler := handlers.NewDashboardHandler(agg)

	// Uploaded site photos are public objects.
	r.Static(cfg.Storage.BaseURL, store.Dir())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// AUTH
	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/login", authHandler.SignIn)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth(cfg.Session.Secret))
	auth.Use(middleware.InjectUser())

	auth.POST("/auth/logout", authHandler.SignOut)
	auth.GET("/auth/me", authHandler.Me)

	// DASHBOARD
	auth.GET("/dashboard", dashboardHandler.Summary)

	// PROJECTS
	auth.GET("/projects", handlers.ListProjects)
	auth.POST("/projects", handlers.CreateProject)
	auth.GET("/projects/:id", handlers.GetProject)
	auth.PUT("/projects/:id", handlers.UpdateProject)
	auth.DELETE("/projects/:id",
		middleware.RequireRole(string(taxonomy.RoleAdmin), string(taxonomy.RoleManager)),
		handlers.DeleteProject,
	)
	auth.POST("/projects/:id/step", handlers.ChangeProjectStep)
	auth.GET("/projects/:id/timeline", handlers.GetProjectTimeline)
	auth.GET("/projects/:id/history", handlers.GetProjectHistory)

	// SITE LOGS
	auth.GET("/projects/:id/logs", handlers.ListSiteLogs)
	auth.POST("/projects/:id/logs", handlers.CreateSiteLog)
	auth.DELETE("/logs/:id", handlers.DeleteSiteLog)

	// DOCUMENTS
	auth.GET("/projects/:id/documents", handlers.ListProjectDocuments)
	auth.POST("/projects/:id/documents", handlers.CreateDocument)

	// INSIGHTS (read-only; written by the MQ consumer)
	auth.GET("/projects/:id/insights", handlers.ListProjectInsights)
	auth.GET("/insights", handlers.ListInsights)

	// TEAMS (read-only directory)
	auth.GET("/teams", handlers.ListTeams)
	auth.GET("/managers", handlers.ListManagers)

	// UPLOADS
	auth.POST("/uploads/images", uploadHandler.UploadImages)
	auth.DELETE("/uploads/images", uploadHandler.RemoveImages)

	// FUTURE PHASE
	auth.GET("/schedule", handlers.SchedulePage)
	auth.GET("/settings", handlers.SettingsPage)

	return r
}
