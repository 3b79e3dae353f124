package config

import (
	"log"
	"os"

	"github.com/AtharvMirajkar/delivery-management-system/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "delivery_orders_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnv exposes env lookup with fallback to other packages
func GetEnv(key, fallback string) string {
	return getEnv(key, fallback)
}

// LoadEnv reads an optional .env file and refreshes env-derived values
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		JWTSecret = []byte(getEnv("JWT_SECRET", "delivery_orders_super_secret_2024"))
	}
}

func InitDB() {
	var err error
	source := getEnv("DB_SOURCE", "delivery_orders.db")
	DB, err = gorm.Open(sqlite.Open(source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Order{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}
