package database

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sitedesk/internal/models"
	"sitedesk/internal/retry"
	"sitedesk/internal/taxonomy"
	"sitedesk/internal/util"
)

var DB *gorm.DB

// connectPolicy covers container startup races where Postgres comes up
// after the app.
var connectPolicy = retry.Policy{MaxAttempts: 10, Delay: 2 * time.Second}

func Init(dsn string) {
	attempt := 0
	err := connectPolicy.Do(context.Background(), func() error {
		attempt++
		util.Log.Info("connecting to DB", zap.Int("attempt", attempt))
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			util.Log.Warn("DB connection failed", zap.Error(err))
			return err
		}
		DB = db
		return nil
	})
	if err != nil {
		util.Log.Fatal("failed to connect to DB", zap.Error(err))
	}
	util.Log.Info("connected to DB")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Project{},
		&models.SiteLog{},
		&models.Document{},
		&models.AiInsight{},
		&models.Schedule{},
		&models.AuthSession{},
		&models.AuditLog{},
	)
	if err != nil {
		util.Log.Fatal("failed to migrate", zap.Error(err))
	}
}

// SeedAdmin creates the default admin account once. Credentials come
// from config only, never from a signup form.
func SeedAdmin(email, password string) {
	if email == "" {
		email = "admin@sitedesk.local"
	}
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", taxonomy.RoleAdmin).
		Count(&count).Error; err != nil {
		util.Log.Warn("failed to check admin user", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		util.Log.Warn("failed to hash admin password", zap.Error(err))
		return
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "관리자",
		Role:         taxonomy.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		util.Log.Warn("failed to create default admin", zap.Error(err))
		return
	}
	util.Log.Info("created default admin user", zap.String("email", email))
}
