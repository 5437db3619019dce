package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sambit-git/ai-nutri-journal/models"
)

// Config holds every process-wide setting, read once at startup and
// passed to the collaborators that need it. Core logic never reads the
// environment on its own.
type Config struct {
	ListenAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	USDAAPIKey   string
	USDAEndpoint string

	AWSRegion string
	S3Bucket  string
	S3BaseURL string
}

// Load reads .env (if present) and the environment into a Config.
func Load() (*Config, error) {
	// .env is a development convenience; in deployment the variables
	// come from the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "nutrijournal"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		USDAAPIKey:   os.Getenv("USDA_API_KEY"),
		USDAEndpoint: getEnv("USDA_ENDPOINT", "https://api.nal.usda.gov/fdc/v1"),

		AWSRegion: os.Getenv("AWS_REGION"),
		S3Bucket:  os.Getenv("S3_BUCKET"),
		S3BaseURL: os.Getenv("S3_BASE_URL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// OpenDB connects to Postgres and migrates the schema. TranslateError
// is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the catalog's insert-if-absent relies on.
func OpenDB(c *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.NutritionalValue{},
		&models.Meal{},
		&models.Portion{},
		&models.DailyGoal{},
		&models.DailyProgress{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}
