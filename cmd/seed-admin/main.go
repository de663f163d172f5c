// Command seed-admin creates the initial admin account if none exists.
// Registration never grants admin, so a fresh deployment runs this once.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/config"
	"github.com/ozanturhan/artmarket-backend/internal/database"
	"github.com/ozanturhan/artmarket-backend/internal/logging"
	"github.com/ozanturhan/artmarket-backend/internal/models"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		slog.Error("ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
		os.Exit(1)
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		slog.Info("admin user already exists", "email", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	admin := models.User{
		ID:       uuid.New(),
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Role:     string(authz.RoleAdmin),
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		slog.Error("failed to create admin user", "error", err)
		os.Exit(1)
	}

	slog.Info("admin user created", "email", email)
}
