package config

import (
	"fmt"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	SpoonacularAPIKey  string
	SpoonacularBaseURL string
}

// Load reads configuration from the environment, with a .env file as an
// optional local-dev convenience.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       getenv("PORT", "8000"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "yumyum"),
		DBPort:     getenv("DB_PORT", "5432"),

		SpoonacularAPIKey:  os.Getenv("SPOONACULAR_API_KEY"),
		SpoonacularBaseURL: getenv("SPOONACULAR_BASE_URL", "https://api.spoonacular.com"),
	}
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Fridge{},
		&models.FridgeItem{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate failed: %w", err)
	}

	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
