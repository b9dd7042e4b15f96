package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dkotelnikov/shop-backend/internal/models"
)

type Config struct {
	PORT        string
	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	JWT_SECRET  string

	KAFKA_ADDRESS string

	UPLOAD_BACKEND string
	UPLOAD_DIR     string
	S3_BUCKET      string
	S3_REGION      string
	PUBLIC_URL     string

	LOG_LEVEL string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:        os.Getenv("PORT"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_USER:     os.Getenv("DB_USER"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_NAME:     os.Getenv("DB_NAME"),
		JWT_SECRET:  os.Getenv("JWT_SECRET"),

		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),

		UPLOAD_BACKEND: EnvDefault("UPLOAD_BACKEND", "disk"),
		UPLOAD_DIR:     EnvDefault("UPLOAD_DIR", "upload/images"),
		S3_BUCKET:      os.Getenv("S3_BUCKET"),
		S3_REGION:      os.Getenv("S3_REGION"),

		LOG_LEVEL: EnvDefault("LOG_LEVEL", "info"),
	}
	config.PUBLIC_URL = EnvDefault("PUBLIC_URL", "http://localhost:"+config.PORT)

	MustNonEmpty(config.PORT, "PORT")
	MustNonEmpty(config.DB_HOST, "DB_HOST")
	MustNonEmpty(config.DB_PORT, "DB_PORT")
	MustNonEmpty(config.DB_USER, "DB_USER")
	MustNonEmpty(config.DB_NAME, "DB_NAME")
	MustNonEmpty(config.JWT_SECRET, "JWT_SECRET")

	return config, nil
}

func InitDB(configuration *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		configuration.DB_USER, configuration.DB_PASSWORD,
		configuration.DB_HOST, configuration.DB_PORT, configuration.DB_NAME,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.User{}, &models.UploadedFile{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
