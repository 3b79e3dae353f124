package config

import (
	"strings"

	"github.com/AtharvMirajkar/delivery-management-system/logger"
	"github.com/AtharvMirajkar/delivery-management-system/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates a first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Skipped when the vars are unset or the account already exists.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:        "Admin",
		Email:       email,
		Password:    string(hash),
		Role:        models.RoleAdmin,
		IsAvailable: true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	logger.GetLogger().Info("seeded admin account", zap.String("email", email))
	return nil
}
